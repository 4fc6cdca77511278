package entity

// Facing directions
const (
	FacingLeft  = -1
	FacingRight = 1
)

// Body represents the kinematic state shared by every entity.
// Positions are world pixels; velocities are pixels per simulation step.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Facing int

	// Contact flags, rebuilt by every physics step
	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
}

// Rect returns the collision rectangle of the body
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bottom returns the y-coordinate of the body's feet
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center of the body
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// Stop zeroes both velocity components
func (b *Body) Stop() {
	b.VX = 0
	b.VY = 0
}

// Player represents the player entity
type Player struct {
	Body

	// Checkpoint: last position where the player stood on solid ground
	LastSafeX float64
	LastSafeY float64

	// Invulnerable counts down simulation steps after a respawn
	Invulnerable int

	// JumpLatched is set when a jump fires and cleared when the
	// jump input is released, so a held key jumps only once
	JumpLatched bool
}

// NewPlayer creates a new player standing at (x, y)
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Body: Body{
			X:      x,
			Y:      y,
			W:      w,
			H:      h,
			Facing: FacingRight,
		},
		LastSafeX: x,
		LastSafeY: y,
	}
}

// IsInvulnerable returns true while enemy and boss contact is ignored
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable > 0
}

// Tick decrements timers by one step
func (p *Player) Tick() {
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}
