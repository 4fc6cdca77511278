package system

import (
	"math"

	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// PlayerSystem drives the player from input and keeps the checkpoint
type PlayerSystem struct {
	cfg     config.PlayerConfig
	physics *PhysicsSystem
	level   *entity.Level
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg config.PlayerConfig, physics *PhysicsSystem, level *entity.Level) *PlayerSystem {
	return &PlayerSystem{
		cfg:     cfg,
		physics: physics,
		level:   level,
	}
}

// Spawn creates the player standing on the floor at the spawn tile
func (s *PlayerSystem) Spawn() *entity.Player {
	x := float64(s.cfg.SpawnTile * s.level.TileSize)
	y := s.level.FloorY() - s.cfg.Height
	return entity.NewPlayer(x, y, s.cfg.Width, s.cfg.Height)
}

// Update runs one step of the player: input, physics, coins, checkpoint
// and the fall check. Enemy contact is handled by the caller.
func (s *PlayerSystem) Update(p *entity.Player, input InputState, prog *Progress) []Event {
	var events []Event

	if s.ApplyInput(p, input) {
		events = append(events, Event{Kind: EventJump})
	}

	s.physics.Step(&p.Body, s.cfg.Threshold)
	s.clampToLevel(p)

	before := prog.CoinCount
	for i := range s.CollectCoins(p, prog) {
		events = append(events, Event{Kind: EventCoin, Value: before + i + 1})
	}

	if p.OnGround {
		p.LastSafeX = p.X
		p.LastSafeY = p.Y
	}

	if p.Y > s.level.FallLimit {
		s.Respawn(p)
		events = append(events, Event{Kind: EventFell})
	}

	return events
}

// ApplyInput sets horizontal velocity from input and fires a jump.
// Returns true if the player jumped.
func (s *PlayerSystem) ApplyInput(p *entity.Player, input InputState) bool {
	p.VX = 0
	if input.Left {
		p.VX = -s.cfg.MoveSpeed
		p.Facing = entity.FacingLeft
	}
	if input.Right {
		p.VX = s.cfg.MoveSpeed
		p.Facing = entity.FacingRight
	}

	if !input.Jump {
		p.JumpLatched = false
		return false
	}
	if p.JumpLatched || !p.OnGround {
		return false
	}

	p.VY = -s.cfg.JumpVelocity
	p.OnGround = false
	p.JumpLatched = true
	return true
}

// CollectCoins marks every coin the player touches as taken.
// Returns the number of coins picked up this call.
func (s *PlayerSystem) CollectCoins(p *entity.Player, prog *Progress) int {
	reach := math.Min(p.W, p.H) / 2
	r := p.Rect()
	cx, cy := r.CenterX(), r.CenterY()

	picked := 0
	for i := range s.level.Coins {
		c := &s.level.Coins[i]
		if c.Taken {
			continue
		}
		if math.Hypot(cx-c.X, cy-c.Y) < c.R+reach {
			c.Taken = true
			prog.CoinCount++
			picked++
		}
	}
	return picked
}

// Respawn moves the player back behind the checkpoint, stops it and
// grants invulnerability
func (s *PlayerSystem) Respawn(p *entity.Player) {
	p.X = s.RespawnX(p)
	p.Y = p.LastSafeY

	// The checkpoint itself was clear ground, the rewound spot may not be
	if s.physics.Overlaps(&p.Body) {
		p.X = p.LastSafeX
	}

	p.Stop()
	p.OnGround = false
	p.OnCeiling = false
	p.OnWallLeft = false
	p.OnWallRight = false
	p.Invulnerable = s.cfg.Invulnerability
}

// RespawnX returns max(0, checkpoint - rewind), moved left of any hole
// the player would otherwise be standing over
func (s *PlayerSystem) RespawnX(p *entity.Player) float64 {
	x := math.Max(0, p.LastSafeX-s.cfg.RewindDistance)

	ts := float64(s.level.TileSize)
	for i := len(s.level.Holes) - 1; i >= 0; i-- {
		h := s.level.Holes[i]
		left := float64(h.Start) * ts
		right := float64(h.Start+h.Length) * ts
		if x < right && x+p.W > left {
			x = math.Max(0, left-p.W)
		}
	}

	return math.Min(x, s.maxX(p))
}

func (s *PlayerSystem) clampToLevel(p *entity.Player) {
	if p.X < 0 {
		p.X = 0
	}
	if maxX := s.maxX(p); p.X > maxX {
		p.X = maxX
	}
}

func (s *PlayerSystem) maxX(p *entity.Player) float64 {
	return math.Max(0, s.level.PixelWidth()-p.W)
}
