package entity

// Enemy represents a patrolling enemy.
// A stomped enemy stays in the list with Active cleared.
type Enemy struct {
	Body
	Slot   int
	Name   string
	Active bool

	Speed       float64
	PatrolLeft  float64
	PatrolRight float64
}

// NewEnemy creates an active enemy walking left at the given speed
func NewEnemy(slot int, name string, x, y, w, h, speed float64) *Enemy {
	return &Enemy{
		Body: Body{
			X:      x,
			Y:      y,
			W:      w,
			H:      h,
			VX:     -speed,
			Facing: FacingLeft,
		},
		Slot:        slot,
		Name:        name,
		Active:      true,
		Speed:       speed,
		PatrolLeft:  x,
		PatrolRight: x,
	}
}

// Turn reverses the patrol direction
func (e *Enemy) Turn() {
	e.Facing = -e.Facing
	e.VX = float64(e.Facing) * e.Speed
}

// Deactivate removes the enemy from play
func (e *Enemy) Deactivate() {
	e.Active = false
	e.Stop()
}
