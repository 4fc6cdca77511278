package system

import (
	"math"

	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// Hit is the outcome of the player overlapping an enemy or the boss
type Hit int

const (
	HitNone Hit = iota
	HitStomp
	HitHurt
)

// EnemySystem spawns patrolling enemies as the player advances and
// resolves contact with the player
type EnemySystem struct {
	cfg          config.EnemiesConfig
	jumpVelocity float64
	physics      *PhysicsSystem
	level        *entity.Level
}

// NewEnemySystem creates a new enemy system.
// jumpVelocity is the player's, used to scale the stomp bounce.
func NewEnemySystem(cfg config.EnemiesConfig, jumpVelocity float64, physics *PhysicsSystem, level *entity.Level) *EnemySystem {
	return &EnemySystem{
		cfg:          cfg,
		jumpVelocity: jumpVelocity,
		physics:      physics,
		level:        level,
	}
}

// SpawnX returns the pixel x of spawn slot i
func (s *EnemySystem) SpawnX(i int) float64 {
	return float64(s.cfg.SpawnTiles[i] * s.level.TileSize)
}

// MaybeSpawnByProgress activates the next enemy in the spawn table once
// the player is within the lead distance of its spawn point.
// At most one enemy is spawned per call; nil means none was.
func (s *EnemySystem) MaybeSpawnByProgress(playerX float64, prog *Progress) *entity.Enemy {
	if prog.NextEnemy >= len(s.cfg.SpawnTiles) {
		return nil
	}

	lead := float64(s.cfg.LeadTiles * s.level.TileSize)
	if playerX <= s.SpawnX(prog.NextEnemy)-lead {
		return nil
	}

	e := s.Spawn(prog.NextEnemy)
	prog.NextEnemy++
	return e
}

// Spawn creates the enemy of slot i standing on the floor at its spawn tile
func (s *EnemySystem) Spawn(i int) *entity.Enemy {
	x := s.SpawnX(i)
	y := s.level.FloorY() - s.cfg.Height
	speed := s.cfg.BaseSpeed + s.cfg.SpeedStep*float64(i)

	e := entity.NewEnemy(i, s.cfg.Roster[i], x, y, s.cfg.Width, s.cfg.Height, speed)
	e.PatrolLeft, e.PatrolRight = s.patrolRange(e)
	return e
}

// patrolRange centers the patrol on the spawn point and keeps it on the
// ground segment the enemy spawned on, so it never walks into a hole.
// The bounds are limits for the enemy's left edge.
func (s *EnemySystem) patrolRange(e *entity.Enemy) (left, right float64) {
	half := float64(s.cfg.PatrolTiles*s.level.TileSize) / 2
	cx := e.CenterX()
	spanLeft, spanRight := s.level.GroundSpan(cx)

	left = math.Max(spanLeft, cx-half)
	right = math.Min(spanRight, cx+half) - e.W
	if right < left {
		right = left
	}
	return left, right
}

// Update moves an active enemy one step along its patrol.
// It turns around at either bound or when it walks into a wall.
func (s *EnemySystem) Update(e *entity.Enemy) {
	if !e.Active {
		return
	}

	e.VX = float64(e.Facing) * e.Speed
	s.physics.Step(&e.Body, s.cfg.Threshold)

	switch {
	case e.X <= e.PatrolLeft:
		e.X = e.PatrolLeft
		s.face(e, entity.FacingRight)
	case e.X >= e.PatrolRight:
		e.X = e.PatrolRight
		s.face(e, entity.FacingLeft)
	case e.OnWallLeft:
		s.face(e, entity.FacingRight)
	case e.OnWallRight:
		s.face(e, entity.FacingLeft)
	}

	if e.Y > s.level.FallLimit {
		e.Deactivate()
	}
}

func (s *EnemySystem) face(e *entity.Enemy, dir int) {
	if e.Facing != dir {
		e.Turn()
	}
}

// Collide classifies contact between the player and an active enemy.
// A stomp needs the player descending with its feet only just inside
// the enemy's top.
func (s *EnemySystem) Collide(p *entity.Player, e *entity.Enemy) Hit {
	if !e.Active || !p.Rect().Intersects(e.Rect()) {
		return HitNone
	}
	if p.VY > 0 && p.Bottom()-e.Y < s.cfg.StompThreshold {
		return HitStomp
	}
	return HitHurt
}

// Stomp removes the enemy from play and bounces the player
func (s *EnemySystem) Stomp(p *entity.Player, e *entity.Enemy) {
	e.Deactivate()
	p.VY = -s.jumpVelocity * s.cfg.StompBounce
	p.OnGround = false
}
