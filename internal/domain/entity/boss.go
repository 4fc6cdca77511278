package entity

// BossState is the phase of the boss
type BossState int

const (
	BossSleeping BossState = iota
	BossFalling
	BossHopping
	BossDefeated
)

// String returns the string representation of the boss state
func (s BossState) String() string {
	switch s {
	case BossSleeping:
		return "Sleeping"
	case BossFalling:
		return "Falling"
	case BossHopping:
		return "Hopping"
	case BossDefeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// Boss represents the end-of-level boss
type Boss struct {
	Body
	State        BossState
	HP           int
	MaxHP        int
	Speed        float64
	Invulnerable int
	HopCooldown  int
}

// NewBoss creates a sleeping boss
func NewBoss(w, h float64, hp int, speed float64) *Boss {
	return &Boss{
		Body: Body{
			W:      w,
			H:      h,
			Facing: FacingLeft,
		},
		State: BossSleeping,
		HP:    hp,
		MaxHP: hp,
		Speed: speed,
	}
}

// Spawned returns true once the boss has left the Sleeping state
func (b *Boss) Spawned() bool {
	return b.State != BossSleeping
}

// Alive returns true while the boss takes part in the simulation
func (b *Boss) Alive() bool {
	return b.State == BossFalling || b.State == BossHopping
}

// Damage removes one hit point, floored at zero.
// Returns true when the hit defeats the boss.
func (b *Boss) Damage() bool {
	if b.State != BossHopping || b.HP <= 0 {
		return false
	}
	b.HP--
	if b.HP == 0 {
		b.State = BossDefeated
		b.Stop()
		return true
	}
	return false
}
