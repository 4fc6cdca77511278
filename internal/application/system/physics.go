package system

import (
	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// Contact classifies how a body met a platform.
// Left and Right name the platform face that was hit.
type Contact int

const (
	ContactNone Contact = iota
	ContactTop
	ContactLeft
	ContactRight
	ContactBottom
)

// String returns the string representation of the contact
func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "Top"
	case ContactLeft:
		return "Left"
	case ContactRight:
		return "Right"
	case ContactBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// PhysicsSystem integrates bodies and resolves them against the level platforms
type PhysicsSystem struct {
	settings config.PhysicsSettings
	level    *entity.Level
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(settings config.PhysicsSettings, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		settings: settings,
		level:    level,
	}
}

// Step advances a body by one simulation step.
// VX is owned by the caller and is never changed here.
func (s *PhysicsSystem) Step(b *entity.Body, th config.ThresholdConfig) {
	s.applyGravity(b)

	b.X += b.VX
	b.Y += b.VY

	s.Resolve(b, th)
}

// applyGravity accelerates the body downward, clamped to terminal velocity
func (s *PhysicsSystem) applyGravity(b *entity.Body) {
	b.VY += s.settings.Gravity
	if b.VY > s.settings.MaxFallSpeed {
		b.VY = s.settings.MaxFallSpeed
	}
}

// Resolve pushes the body out of every platform it overlaps and
// rebuilds its contact flags. Platforms are visited in level order,
// each against the body as already corrected by earlier ones.
func (s *PhysicsSystem) Resolve(b *entity.Body, th config.ThresholdConfig) {
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false

	// No ground support while the body is centered over a hole
	overHole := s.level.InHole(b.CenterX())

	for i := range s.level.Platforms {
		p := &s.level.Platforms[i]
		if p.Ground && overHole {
			continue
		}
		if !b.Rect().Intersects(p.Rect) {
			continue
		}

		switch Classify(b, p.Rect, th) {
		case ContactTop:
			b.Y = p.Y - b.H
			b.VY = 0
			b.OnGround = true
		case ContactLeft:
			b.X = p.X - b.W
			b.OnWallRight = true
		case ContactRight:
			b.X = p.Right()
			b.OnWallLeft = true
		default:
			b.Y = p.Bottom()
			b.VY = 0
			b.OnCeiling = true
		}
	}
}

// Classify picks the side an overlapping body entered a platform from.
// Priority is top, left, right, then bottom, so every overlap maps to
// exactly one side.
func Classify(b *entity.Body, p entity.Rect, th config.ThresholdConfig) Contact {
	switch {
	case b.VY > 0 && b.Bottom()-p.Y < th.Top:
		return ContactTop
	case b.VX > 0 && b.X+b.W-p.X < th.Side:
		return ContactLeft
	case b.VX < 0 && p.Right()-b.X < th.Side:
		return ContactRight
	default:
		return ContactBottom
	}
}

// Overlaps reports whether the body's rectangle intersects any solid
// platform, honoring hole suppression
func (s *PhysicsSystem) Overlaps(b *entity.Body) bool {
	overHole := s.level.InHole(b.CenterX())
	r := b.Rect()
	for i := range s.level.Platforms {
		p := &s.level.Platforms[i]
		if p.Ground && overHole {
			continue
		}
		if r.Intersects(p.Rect) {
			return true
		}
	}
	return false
}
