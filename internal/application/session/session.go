// Package session owns one running level: the entities, the progression
// state and the systems that advance them, one step at a time.
package session

import (
	"fmt"

	"github.com/younwookim/minijump/internal/application/system"
	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// Session is the simulation context of a level.
// Sessions share no state, so several may run side by side.
type Session struct {
	cfg *config.LevelConfig

	level    *entity.Level
	player   *entity.Player
	enemies  []*entity.Enemy
	boss     *entity.Boss
	progress system.Progress
	camera   system.Camera
	frame    int

	physics     *system.PhysicsSystem
	playerSys   *system.PlayerSystem
	enemySys    *system.EnemySystem
	bossSys     *system.BossSystem
	progression *system.ProgressionSystem
}

// New validates the level config and starts a session at frame 0
func New(cfg *config.LevelConfig) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to create session: %w", config.ErrInvalidLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s := &Session{cfg: cfg}
	s.Restart()
	return s, nil
}

// Restart regenerates the level and resets every entity and counter
func (s *Session) Restart() {
	cfg := s.cfg

	s.level = system.LoadStage(cfg)
	s.physics = system.NewPhysicsSystem(cfg.Physics, s.level)
	s.playerSys = system.NewPlayerSystem(cfg.Player, s.physics, s.level)
	s.enemySys = system.NewEnemySystem(cfg.Enemies, cfg.Player.JumpVelocity, s.physics, s.level)
	s.bossSys = system.NewBossSystem(cfg.Boss, cfg.Player.JumpVelocity, s.physics, s.level)
	s.progression = system.NewProgressionSystem(cfg.Goal, cfg.Display, s.level)

	s.player = s.playerSys.Spawn()
	s.enemies = make([]*entity.Enemy, 0, len(cfg.Enemies.SpawnTiles))
	s.boss = s.bossSys.Create()
	s.progress = system.Progress{}
	s.camera = s.progression.NewCamera()
	s.progression.UpdateCamera(&s.camera, s.player.X)
	s.frame = 0
}

// Step advances the simulation by one step and returns the resulting state.
// Once the level is finished only the victory timer advances.
func (s *Session) Step(input system.InputState) Snapshot {
	s.frame++

	if s.progress.Finished {
		s.progression.AdvanceVictory(&s.progress)
		return s.snapshot(nil)
	}

	var events []system.Event

	// Timers
	s.player.Tick()
	s.bossSys.Tick(s.boss)

	// AI that chases the player sees where it stood before this step
	targetX := s.player.X

	events = append(events, s.playerSys.Update(s.player, input, &s.progress)...)

	if e := s.enemySys.MaybeSpawnByProgress(s.player.X, &s.progress); e != nil {
		s.enemies = append(s.enemies, e)
		events = append(events, system.Event{Kind: system.EventEnemySpawn, Slot: e.Slot, Name: e.Name})
	}
	for _, e := range s.enemies {
		s.enemySys.Update(e)
	}

	if s.bossSys.MaybeSpawn(s.boss, s.player.X) {
		events = append(events, system.Event{Kind: system.EventBossSpawn})
	}
	events = append(events, s.bossSys.Update(s.boss, targetX)...)

	events = append(events, s.collideEnemies()...)
	events = append(events, s.collideBoss()...)

	if s.progression.CheckGoal(s.player, &s.progress) {
		events = append(events, system.Event{Kind: system.EventGoal, Value: s.progress.CoinCount})
	}

	s.progression.UpdateCamera(&s.camera, s.player.X)

	return s.snapshot(events)
}

// collideEnemies resolves player contact with every active enemy.
// Nothing touches an invulnerable player.
func (s *Session) collideEnemies() []system.Event {
	var events []system.Event
	for _, e := range s.enemies {
		if s.player.IsInvulnerable() {
			break
		}
		switch s.enemySys.Collide(s.player, e) {
		case system.HitStomp:
			s.enemySys.Stomp(s.player, e)
			events = append(events, system.Event{Kind: system.EventStomp, Slot: e.Slot, Name: e.Name})
		case system.HitHurt:
			s.playerSys.Respawn(s.player)
			events = append(events, system.Event{Kind: system.EventHurt, Slot: e.Slot, Name: e.Name})
		}
	}
	return events
}

func (s *Session) collideBoss() []system.Event {
	if s.player.IsInvulnerable() {
		return nil
	}
	switch s.bossSys.Collide(s.player, s.boss) {
	case system.HitStomp:
		if s.bossSys.Stomp(s.player, s.boss) {
			return []system.Event{{Kind: system.EventBossDefeated}}
		}
		return []system.Event{{Kind: system.EventBossHit, Value: s.boss.HP}}
	case system.HitHurt:
		s.playerSys.Respawn(s.player)
		return []system.Event{{Kind: system.EventHurt, Slot: -1, Name: "boss"}}
	}
	return nil
}

// Snapshot returns the current state without stepping
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(nil)
}

// Config returns the level config the session was built from
func (s *Session) Config() *config.LevelConfig {
	return s.cfg
}

// Level returns the static level data
func (s *Session) Level() *entity.Level {
	return s.level
}

// Player returns the player entity
func (s *Session) Player() *entity.Player {
	return s.player
}

// Enemies returns every enemy spawned so far, stomped ones included
func (s *Session) Enemies() []*entity.Enemy {
	return s.enemies
}

// Boss returns the boss entity
func (s *Session) Boss() *entity.Boss {
	return s.boss
}

// Progress returns a copy of the progression state
func (s *Session) Progress() system.Progress {
	return s.progress
}

// Frame returns the number of steps taken since the last restart
func (s *Session) Frame() int {
	return s.frame
}

// Finished returns true once the goal has been reached
func (s *Session) Finished() bool {
	return s.progress.Finished
}
