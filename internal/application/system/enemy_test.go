package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/minijump/internal/domain/entity"
)

func TestEnemySystem_MaybeSpawnByProgress(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	var prog Progress

	// Spawn x 540, lead 108
	assert.Nil(t, sys.enemy.MaybeSpawnByProgress(432, &prog))
	assert.Equal(t, 0, prog.NextEnemy)

	e := sys.enemy.MaybeSpawnByProgress(433, &prog)
	require.NotNil(t, e)
	assert.Equal(t, 0, e.Slot)
	assert.Equal(t, "a", e.Name)
	assert.Equal(t, 540.0, e.X)
	assert.Equal(t, 382.0, e.Y)
	assert.Equal(t, 1.8, e.Speed)
	assert.True(t, e.Active)
	assert.Equal(t, 1, prog.NextEnemy)

	assert.Nil(t, sys.enemy.MaybeSpawnByProgress(433, &prog))
}

func TestEnemySystem_SpawnsOneAtATime(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	var prog Progress

	// Far past every threshold: still one per call, in table order
	first := sys.enemy.MaybeSpawnByProgress(3000, &prog)
	second := sys.enemy.MaybeSpawnByProgress(3000, &prog)
	third := sys.enemy.MaybeSpawnByProgress(3000, &prog)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Nil(t, third)
	assert.Equal(t, 0, first.Slot)
	assert.Equal(t, 1, second.Slot)
	assert.Equal(t, "b", second.Name)
	assert.InDelta(t, 2.0, second.Speed, 1e-9)
	assert.Equal(t, 2, prog.NextEnemy)
}

func TestEnemySystem_PatrolRange(t *testing.T) {
	cfg := createTestConfig()
	cfg.Enemies.SpawnTiles = []int{10, 33}
	sys := newTestSystems(cfg)

	e := sys.enemy.Spawn(0)
	assert.Equal(t, 322.0, e.PatrolLeft)
	assert.Equal(t, 758.0, e.PatrolRight)

	// Spawned just right of the hole: clipped to the ground segment
	near := sys.enemy.Spawn(1)
	assert.Equal(t, 1728.0, near.PatrolLeft)
	assert.Equal(t, 2000.0, near.PatrolRight)
}

func TestEnemySystem_UpdateWalks(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	e := sys.enemy.Spawn(0)

	sys.enemy.Update(e)

	assert.InDelta(t, 538.2, e.X, 1e-9)
	assert.Equal(t, 382.0, e.Y)
	assert.True(t, e.OnGround)
	assert.Equal(t, entity.FacingLeft, e.Facing)
}

func TestEnemySystem_ReversesAtBounds(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	e := sys.enemy.Spawn(0)

	e.X = e.PatrolLeft + 1
	sys.enemy.Update(e)
	assert.Equal(t, e.PatrolLeft, e.X)
	assert.Equal(t, entity.FacingRight, e.Facing)
	assert.Equal(t, 1.8, e.VX)

	e.X = e.PatrolRight - 1
	sys.enemy.Update(e)
	assert.Equal(t, e.PatrolRight, e.X)
	assert.Equal(t, entity.FacingLeft, e.Facing)
	assert.Equal(t, -1.8, e.VX)
}

func TestEnemySystem_StaysWithinPatrol(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	e := sys.enemy.Spawn(0)

	for i := 0; i < 1000; i++ {
		sys.enemy.Update(e)
		require.GreaterOrEqual(t, e.X, e.PatrolLeft)
		require.LessOrEqual(t, e.X, e.PatrolRight)
		require.True(t, e.Active)
	}
}

func TestEnemySystem_ReversesAtWall(t *testing.T) {
	wall := block(480, 382, 54, 104)
	sys := newTestSystems(createTestConfig(), wall)
	e := sys.enemy.Spawn(0)
	e.X = 535

	sys.enemy.Update(e)

	assert.Equal(t, 534.0, e.X)
	assert.Equal(t, entity.FacingRight, e.Facing)
}

func TestEnemySystem_Stomp(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	e := sys.enemy.Spawn(0)

	// Player falling onto the enemy, feet 10px into its top
	p := entity.NewPlayer(560, 382+10-64, 48, 64)
	p.VY = 5

	require.Equal(t, HitStomp, sys.enemy.Collide(p, e))
	sys.enemy.Stomp(p, e)

	assert.False(t, e.Active)
	assert.Equal(t, 0.0, e.VX)
	assert.InDelta(t, -9.6, p.VY, 1e-9)
	assert.Equal(t, HitNone, sys.enemy.Collide(p, e))
}

func TestEnemySystem_CollideClassification(t *testing.T) {
	sys := newTestSystems(createTestConfig())
	e := sys.enemy.Spawn(0)

	tests := []struct {
		name string
		x, y float64
		vy   float64
		want Hit
	}{
		{"apart", 100, 422, 0, HitNone},
		{"side on the ground", 500, 422, 0, HitHurt},
		{"descending shallow", 560, 382 + 10 - 64, 5, HitStomp},
		{"descending too deep", 560, 382 + 30 - 64, 5, HitHurt},
		{"rising into it", 560, 382 + 10 - 64, -5, HitHurt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewPlayer(tt.x, tt.y, 48, 64)
			p.VY = tt.vy
			assert.Equal(t, tt.want, sys.enemy.Collide(p, e))
		})
	}
}
