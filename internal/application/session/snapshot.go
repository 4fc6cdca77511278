package session

import (
	"github.com/younwookim/minijump/internal/application/system"
	"github.com/younwookim/minijump/internal/domain/entity"
)

// BodyView is the drawable state of a body
type BodyView struct {
	entity.Rect
	VX, VY   float64
	Facing   int
	OnGround bool
}

// PlayerView is the drawable state of the player
type PlayerView struct {
	BodyView
	Invulnerable bool
}

// EnemyView is the drawable state of an enemy
type EnemyView struct {
	BodyView
	Slot   int
	Name   string
	Active bool
}

// BossView is the drawable state of the boss.
// Visible is false while sleeping and once defeated.
type BossView struct {
	BodyView
	State        entity.BossState
	HP, MaxHP    int
	Invulnerable int
	Visible      bool
}

// Snapshot is a read-only copy of everything a renderer needs.
// Platforms is shared with the level and must not be modified.
type Snapshot struct {
	Frame     int
	Player    PlayerView
	Enemies   []EnemyView
	Boss      BossView
	Coins     []entity.Coin
	Platforms []entity.Platform
	Goal      entity.Rect
	Camera    system.Camera

	CoinCount int
	Finished  bool
	// Victory is the eased 0..1 progress of the victory animation
	Victory float64

	// Events emitted during the step that produced this snapshot
	Events []system.Event
}

func viewOf(b *entity.Body) BodyView {
	return BodyView{
		Rect:     b.Rect(),
		VX:       b.VX,
		VY:       b.VY,
		Facing:   b.Facing,
		OnGround: b.OnGround,
	}
}

func (s *Session) snapshot(events []system.Event) Snapshot {
	snap := Snapshot{
		Frame: s.frame,
		Player: PlayerView{
			BodyView:     viewOf(&s.player.Body),
			Invulnerable: s.player.IsInvulnerable(),
		},
		Enemies: make([]EnemyView, 0, len(s.enemies)),
		Boss: BossView{
			BodyView:     viewOf(&s.boss.Body),
			State:        s.boss.State,
			HP:           s.boss.HP,
			MaxHP:        s.boss.MaxHP,
			Invulnerable: s.boss.Invulnerable,
			Visible:      s.boss.Alive(),
		},
		Coins:     append([]entity.Coin(nil), s.level.Coins...),
		Platforms: s.level.Platforms,
		Goal:      s.level.Goal,
		Camera:    s.camera,
		CoinCount: s.progress.CoinCount,
		Finished:  s.progress.Finished,
		Victory:   s.progression.VictoryProgress(&s.progress),
		Events:    events,
	}

	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			BodyView: viewOf(&e.Body),
			Slot:     e.Slot,
			Name:     e.Name,
			Active:   e.Active,
		})
	}

	return snap
}
