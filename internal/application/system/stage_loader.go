package system

import (
	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// LoadStage generates the static level data from a LevelConfig.
// Floor tiles are omitted at hole columns; platforms are ordered by
// column, floor first.
func LoadStage(cfg *config.LevelConfig) *entity.Level {
	w := cfg.World
	ts := float64(w.TileSize)

	level := &entity.Level{
		Number:   cfg.Number,
		Name:     cfg.Name,
		TileSize: w.TileSize,
		Width:    w.Width,
		FloorRow: w.FloorRow,
	}

	for _, h := range w.Holes {
		level.Holes = append(level.Holes, entity.Hole{Start: h.Start, Length: h.Length})
	}

	floorY := level.FloorY()
	for i := 0; i < w.Width; i++ {
		x := float64(i) * ts
		hole := level.HoleAt(i) != nil

		if !hole {
			level.Platforms = append(level.Platforms, entity.Platform{
				Rect:   entity.Rect{X: x, Y: floorY, W: ts, H: ts},
				Ground: true,
			})
		}

		for _, r := range cfg.Platforms.Rules {
			if i%r.Every != r.Offset || (r.SkipHoles && hole) {
				continue
			}
			level.Platforms = append(level.Platforms, entity.Platform{
				Rect: entity.Rect{X: x, Y: float64(w.FloorRow-r.RowsAboveFloor) * ts, W: ts, H: ts},
			})
		}
	}

	for _, r := range cfg.Platforms.Extra {
		level.Platforms = append(level.Platforms, entity.Platform{
			Rect:   entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
			Ground: r.Ground,
		})
	}

	c := cfg.Coins
	if c.Every > 0 {
		for i := c.StartTile; i < w.Width; i += c.Every {
			level.Coins = append(level.Coins, entity.Coin{
				X: float64(i)*ts + ts/2,
				Y: float64(w.FloorRow-c.RowsAboveFloor)*ts + c.OffsetY,
				R: c.Radius,
			})
		}
	}

	g := cfg.Goal
	level.Goal = entity.Rect{
		X: float64(g.Tile) * ts,
		Y: float64(w.FloorRow-g.RowsAboveFloor) * ts,
		W: g.Width,
		H: g.Height,
	}

	level.FallLimit = floorY + float64(w.FallRows)*ts

	return level
}
