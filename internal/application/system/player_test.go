package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/minijump/internal/domain/entity"
)

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestPlayerSystem_Spawn(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := sys.player.Spawn()

	assert.Equal(t, 108.0, p.X)
	assert.Equal(t, 422.0, p.Y)
	assert.Equal(t, 48.0, p.W)
	assert.Equal(t, 64.0, p.H)
	assert.Equal(t, entity.FacingRight, p.Facing)
}

func TestPlayerSystem_ApplyInput_Movement(t *testing.T) {
	sys := newTestSystems(createTestConfig())

	tests := []struct {
		name       string
		input      InputState
		wantVX     float64
		wantFacing int
	}{
		{"idle", InputState{}, 0, entity.FacingRight},
		{"left", InputState{Left: true}, -2.2, entity.FacingLeft},
		{"right", InputState{Right: true}, 2.2, entity.FacingRight},
		{"both, right wins", InputState{Left: true, Right: true}, 2.2, entity.FacingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := standingPlayer(108)
			p.VX = 5 // reset every step, never accumulated

			sys.player.ApplyInput(p, tt.input)

			assert.Equal(t, tt.wantVX, p.VX)
			assert.Equal(t, tt.wantFacing, p.Facing)
		})
	}
}

func TestPlayerSystem_Jump(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := standingPlayer(108)

	jumped := sys.player.ApplyInput(p, InputState{Jump: true})

	assert.True(t, jumped)
	assert.Equal(t, -16.0, p.VY)
	assert.False(t, p.OnGround)
	assert.True(t, p.JumpLatched)
}

func TestPlayerSystem_JumpFullStep(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := standingPlayer(108)
	var prog Progress

	events := sys.player.Update(p, InputState{Jump: true}, &prog)

	assert.Equal(t, 1, countEvents(events, EventJump))
	assert.False(t, p.OnGround)
	assert.InDelta(t, -15.4, p.VY, 1e-9)
	assert.InDelta(t, 422-15.4, p.Y, 1e-9)
}

func TestPlayerSystem_JumpNeedsGround(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := entity.NewPlayer(108, 200, 48, 64)

	assert.False(t, sys.player.ApplyInput(p, InputState{Jump: true}))
	assert.Equal(t, 0.0, p.VY)
}

func TestPlayerSystem_HeldJumpFiresOnce(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := standingPlayer(108)
	var prog Progress

	jumps := 0
	for i := 0; i < 100; i++ {
		jumps += countEvents(sys.player.Update(p, InputState{Jump: true}, &prog), EventJump)
	}
	assert.Equal(t, 1, jumps)
	require.True(t, p.OnGround, "player should have landed")

	// Release, then press again
	sys.player.Update(p, InputState{}, &prog)
	events := sys.player.Update(p, InputState{Jump: true}, &prog)
	assert.Equal(t, 1, countEvents(events, EventJump))
}

func TestPlayerSystem_AirPressFiresOnLanding(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := entity.NewPlayer(108, 300, 48, 64)
	var prog Progress

	jumpStep := -1
	landed := false
	for i := 0; i < 40; i++ {
		wasGrounded := p.OnGround
		events := sys.player.Update(p, InputState{Jump: true}, &prog)
		if countEvents(events, EventJump) > 0 {
			require.Equal(t, -1, jumpStep, "jumped twice")
			jumpStep = i
			landed = wasGrounded
		}
	}

	assert.Greater(t, jumpStep, 0)
	assert.True(t, landed, "jump should fire on the step after landing")
}

func TestPlayerSystem_CollectCoins(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	sys.level.Coins = []entity.Coin{
		{X: 132, Y: 430, R: 10},
		{X: 500, Y: 454, R: 10},
	}
	p := standingPlayer(108)
	var prog Progress

	events := sys.player.Update(p, InputState{}, &prog)

	assert.Equal(t, 1, prog.CoinCount)
	assert.True(t, sys.level.Coins[0].Taken)
	assert.False(t, sys.level.Coins[1].Taken)
	require.Equal(t, 1, countEvents(events, EventCoin))
	assert.Equal(t, Event{Kind: EventCoin, Value: 1}, events[0])

	// Taken coins never count again
	events = sys.player.Update(p, InputState{}, &prog)
	assert.Equal(t, 1, prog.CoinCount)
	assert.Zero(t, countEvents(events, EventCoin))
}

func TestPlayerSystem_CoinPickupIsStrict(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	// Distance 34 equals r + min(w,h)/2
	sys.level.Coins = []entity.Coin{{X: 132, Y: 420, R: 10}}
	p := standingPlayer(108)
	var prog Progress

	assert.Zero(t, sys.player.CollectCoins(p, &prog))
	assert.False(t, sys.level.Coins[0].Taken)
}

func TestPlayerSystem_Checkpoint(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	var prog Progress

	p := standingPlayer(108)
	sys.player.Update(p, InputState{Right: true}, &prog)
	assert.InDelta(t, 110.2, p.LastSafeX, 1e-9)
	assert.Equal(t, 422.0, p.LastSafeY)

	air := entity.NewPlayer(300, 100, 48, 64)
	air.LastSafeX, air.LastSafeY = 50, 422
	sys.player.Update(air, InputState{Right: true}, &prog)
	assert.Equal(t, 50.0, air.LastSafeX)
}

func TestPlayerSystem_FallRespawns(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	p := entity.NewPlayer(1630, 640, 48, 64)
	p.VY = 10
	p.LastSafeX, p.LastSafeY = 1500, 422
	var prog Progress

	events := sys.player.Update(p, InputState{Right: true}, &prog)

	assert.Equal(t, 1, countEvents(events, EventFell))
	assert.Equal(t, 1392.0, p.X)
	assert.Equal(t, 422.0, p.Y)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, 72, p.Invulnerable)
	assert.True(t, p.IsInvulnerable())
}

func TestPlayerSystem_RespawnX(t *testing.T) {
	sys := newTestSystems(createTestConfig())

	tests := []struct {
		name      string
		lastSafeX float64
		want      float64
	}{
		{"plain rewind", 1500, 1392},
		{"floored at zero", 50, 0},
		{"moved left of hole", 1800, 1572},
		{"landing inside hole", 1760, 1572},
		{"far right", 3192, 3084},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := standingPlayer(tt.lastSafeX)
			p.LastSafeX = tt.lastSafeX
			assert.Equal(t, tt.want, sys.player.RespawnX(p))
		})
	}
}

func TestPlayerSystem_RespawnFallsBackToCheckpoint(t *testing.T) {
	sys := newTestSystems(createTestConfig(), block(480, 400, 54, 54))
	p := standingPlayer(600)
	p.VX = 2.2

	sys.player.Respawn(p)

	assert.Equal(t, 600.0, p.X)
	assert.Equal(t, 422.0, p.Y)
	assert.Equal(t, 0.0, p.VX)
}

func TestPlayerSystem_ClampToLevel(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	var prog Progress

	left := standingPlayer(0)
	sys.player.Update(left, InputState{Left: true}, &prog)
	assert.Equal(t, 0.0, left.X)

	right := standingPlayer(3191)
	sys.player.Update(right, InputState{Right: true}, &prog)
	assert.Equal(t, 3192.0, right.X)
}
