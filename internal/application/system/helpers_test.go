package system

import (
	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// createTestConfig returns a 60-tile level with one hole at tiles 30-31,
// no generated platforms or coins, and the goal at tile 50.
// Floor top is y=486, the fall limit y=648.
func createTestConfig() *config.LevelConfig {
	return &config.LevelConfig{
		Number: 1,
		Name:   "test",
		Display: config.DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 540,
			Scale:        1,
			Framerate:    60,
		},
		Physics: config.PhysicsSettings{
			Gravity:      0.6,
			MaxFallSpeed: 18,
		},
		World: config.WorldConfig{
			TileSize: 54,
			Width:    60,
			FloorRow: 9,
			FallRows: 3,
			Holes:    []config.HoleConfig{{Start: 30, Length: 2}},
		},
		Goal: config.GoalConfig{
			Tile:           50,
			RowsAboveFloor: 5,
			Width:          10,
			Height:         270,
			Padding:        10,
			VictoryFrames:  180,
		},
		Player: config.PlayerConfig{
			Width:           48,
			Height:          64,
			SpawnTile:       2,
			MoveSpeed:       2.2,
			JumpVelocity:    16,
			Threshold:       config.ThresholdConfig{Top: 20, Side: 20},
			RewindDistance:  108,
			Invulnerability: 72,
		},
		Enemies: config.EnemiesConfig{
			Roster:         []string{"a", "b"},
			SpawnTiles:     []int{10, 40},
			LeadTiles:      2,
			Width:          104,
			Height:         104,
			BaseSpeed:      1.8,
			SpeedStep:      0.2,
			PatrolTiles:    10,
			StompThreshold: 24,
			StompBounce:    0.6,
			Threshold:      config.ThresholdConfig{Top: 20, Side: 20},
		},
		Boss: config.BossConfig{
			Width:            96,
			Height:           96,
			HP:               3,
			Speed:            2.4,
			JumpVelocity:     14,
			HopCooldown:      45,
			Invulnerability:  40,
			LeadTiles:        12,
			SpawnOffsetTiles: 6,
			SpawnRows:        6,
			SpawnHeight:      400,
			DropSpeed:        2,
			StompThreshold:   28,
			StompBounce:      0.65,
			Threshold:        config.ThresholdConfig{Top: 28, Side: 20},
		},
	}
}

type testSystems struct {
	cfg         *config.LevelConfig
	level       *entity.Level
	physics     *PhysicsSystem
	player      *PlayerSystem
	enemy       *EnemySystem
	boss        *BossSystem
	progression *ProgressionSystem
}

// newTestSystems builds every system over one level.
// extra platforms are appended after the generated ones.
func newTestSystems(cfg *config.LevelConfig, extra ...entity.Platform) *testSystems {
	level := LoadStage(cfg)
	level.Platforms = append(level.Platforms, extra...)

	physics := NewPhysicsSystem(cfg.Physics, level)
	return &testSystems{
		cfg:         cfg,
		level:       level,
		physics:     physics,
		player:      NewPlayerSystem(cfg.Player, physics, level),
		enemy:       NewEnemySystem(cfg.Enemies, cfg.Player.JumpVelocity, physics, level),
		boss:        NewBossSystem(cfg.Boss, cfg.Player.JumpVelocity, physics, level),
		progression: NewProgressionSystem(cfg.Goal, cfg.Display, level),
	}
}

func block(x, y, w, h float64) entity.Platform {
	return entity.Platform{Rect: entity.Rect{X: x, Y: y, W: w, H: h}}
}

// standingPlayer returns a player at rest on the floor at x
func standingPlayer(x float64) *entity.Player {
	p := entity.NewPlayer(x, 422, 48, 64)
	p.OnGround = true
	return p
}
