package system

import (
	"math"

	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// BossSystem runs the boss state machine: Sleeping, Falling, Hopping, Defeated
type BossSystem struct {
	cfg          config.BossConfig
	jumpVelocity float64
	physics      *PhysicsSystem
	level        *entity.Level
}

// NewBossSystem creates a new boss system.
// jumpVelocity is the player's, used to scale the stomp bounce.
func NewBossSystem(cfg config.BossConfig, jumpVelocity float64, physics *PhysicsSystem, level *entity.Level) *BossSystem {
	return &BossSystem{
		cfg:          cfg,
		jumpVelocity: jumpVelocity,
		physics:      physics,
		level:        level,
	}
}

// Create returns a sleeping boss with full hit points
func (s *BossSystem) Create() *entity.Boss {
	return entity.NewBoss(s.cfg.Width, s.cfg.Height, s.cfg.HP, s.cfg.Speed)
}

// Tick counts the boss invulnerability down, whatever its state
func (s *BossSystem) Tick(b *entity.Boss) {
	if b.Invulnerable > 0 {
		b.Invulnerable--
	}
}

// MaybeSpawn wakes the boss once the player comes within the lead
// distance of the goal. Returns true only on the waking step.
func (s *BossSystem) MaybeSpawn(b *entity.Boss, playerX float64) bool {
	if b.Spawned() {
		return false
	}
	lead := float64(s.cfg.LeadTiles * s.level.TileSize)
	if playerX <= s.level.Goal.X-lead {
		return false
	}
	s.drop(b)
	return true
}

// drop places the boss above the arena in the Falling state
func (s *BossSystem) drop(b *entity.Boss) {
	ts := float64(s.level.TileSize)
	b.X = s.level.Goal.X - float64(s.cfg.SpawnOffsetTiles)*ts
	b.Y = float64(s.level.FloorRow-s.cfg.SpawnRows)*ts - s.cfg.SpawnHeight
	b.VX = 0
	b.VY = s.cfg.DropSpeed
	b.OnGround = false
	b.Facing = entity.FacingLeft
	b.HopCooldown = 0
	b.State = entity.BossFalling
}

// Update advances the boss one step. targetX is the player's x at the
// start of the step.
func (s *BossSystem) Update(b *entity.Boss, targetX float64) []Event {
	var events []Event

	switch b.State {
	case entity.BossFalling:
		b.VX = 0
		s.physics.Step(&b.Body, s.cfg.Threshold)
		if b.OnGround {
			b.State = entity.BossHopping
			b.HopCooldown = 0
			events = append(events, Event{Kind: EventBossLand})
		}

	case entity.BossHopping:
		if b.HopCooldown > 0 {
			b.HopCooldown--
		}

		b.Facing = entity.FacingRight
		if targetX < b.X {
			b.Facing = entity.FacingLeft
		}
		b.VX = float64(b.Facing) * b.Speed

		s.physics.Step(&b.Body, s.cfg.Threshold)
		s.clampToLevel(b)

		if b.OnWallLeft {
			b.Facing = entity.FacingRight
		}
		if b.OnWallRight {
			b.Facing = entity.FacingLeft
		}

		if b.OnGround && b.HopCooldown == 0 {
			b.VY = -s.cfg.JumpVelocity
			b.OnGround = false
			b.HopCooldown = s.cfg.HopCooldown
		}

	default:
		return nil
	}

	// A boss lured into a hole drops in again from its spawn point
	if b.Y > s.level.FallLimit {
		s.drop(b)
		events = append(events, Event{Kind: EventBossFell})
	}

	return events
}

// Collide classifies contact between the player and the boss.
// Only a hopping boss interacts with the player.
func (s *BossSystem) Collide(p *entity.Player, b *entity.Boss) Hit {
	if b.State != entity.BossHopping || !p.Rect().Intersects(b.Rect()) {
		return HitNone
	}
	if p.VY > 0 && p.Bottom()-b.Y < s.cfg.StompThreshold && b.Invulnerable == 0 {
		return HitStomp
	}
	return HitHurt
}

// Stomp deals one hit point of damage, knocks the boss one tile away
// from the player and bounces the player. Returns true when the hit
// defeats the boss.
func (s *BossSystem) Stomp(p *entity.Player, b *entity.Boss) bool {
	if b.State != entity.BossHopping {
		return false
	}

	p.VY = -s.jumpVelocity * s.cfg.StompBounce
	p.OnGround = false

	ts := float64(s.level.TileSize)
	if p.X < b.X {
		b.X += ts
	} else {
		b.X -= ts
	}
	s.clampToLevel(b)
	b.Invulnerable = s.cfg.Invulnerability

	return b.Damage()
}

func (s *BossSystem) clampToLevel(b *entity.Boss) {
	maxX := math.Max(0, s.level.PixelWidth()-b.W)
	b.X = entity.Clamp(b.X, 0, maxX)
}
