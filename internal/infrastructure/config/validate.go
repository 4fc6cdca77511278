package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is wrapped by every validation failure
var ErrInvalidLevel = errors.New("invalid level")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLevel, fmt.Sprintf(format, args...))
}

// Validate checks the invariants the simulation relies on.
// It never adjusts values; a level that breaks one is rejected.
func (c *LevelConfig) Validate() error {
	w := c.World
	if w.TileSize <= 0 || w.Width <= 0 {
		return invalid("world size must be positive (tileSize=%d, width=%d)", w.TileSize, w.Width)
	}
	if w.FloorRow <= 0 {
		return invalid("floorRow must be positive, got %d", w.FloorRow)
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return invalid("screen size must be positive (%dx%d)", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Physics.Gravity <= 0 || c.Physics.MaxFallSpeed <= 0 {
		return invalid("gravity and maxFallSpeed must be positive")
	}
	// A body falling at full speed must not pass through a landing band in one frame
	type band struct {
		name string
		top  float64
	}
	bands := []band{{"player", c.Player.Threshold.Top}, {"boss", c.Boss.Threshold.Top}}
	if len(c.Enemies.SpawnTiles) > 0 {
		bands = append(bands, band{"enemies", c.Enemies.Threshold.Top})
	}
	for _, th := range bands {
		if c.Physics.MaxFallSpeed >= th.top {
			return invalid("maxFallSpeed %v must be below the %s landing threshold %v", c.Physics.MaxFallSpeed, th.name, th.top)
		}
	}

	if err := c.validateHoles(); err != nil {
		return err
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("player size must be positive")
	}
	if p.JumpVelocity <= 0 {
		return invalid("player jumpVelocity must be positive, got %v", p.JumpVelocity)
	}
	if p.SpawnTile < 0 || p.SpawnTile >= w.Width || c.inHole(p.SpawnTile) {
		return invalid("player spawn tile %d is outside the world or over a hole", p.SpawnTile)
	}

	g := c.Goal
	if g.Tile < 0 || g.Tile >= w.Width {
		return invalid("goal tile %d outside world of %d tiles", g.Tile, w.Width)
	}
	if c.inHole(g.Tile) {
		return invalid("goal tile %d lies inside a hole", g.Tile)
	}
	if g.Tile <= p.SpawnTile {
		return invalid("goal tile %d must be ahead of the player spawn %d", g.Tile, p.SpawnTile)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return invalid("goal size must be positive")
	}

	if err := c.validateEnemies(); err != nil {
		return err
	}

	b := c.Boss
	if b.HP <= 0 {
		return invalid("boss hp must be positive, got %d", b.HP)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("boss size must be positive")
	}
	if b.SpawnOffsetTiles < 0 || g.Tile-b.SpawnOffsetTiles < 0 {
		return invalid("boss spawn offset %d places it outside the world", b.SpawnOffsetTiles)
	}

	if c.Coins.Every < 0 || c.Coins.Radius < 0 {
		return invalid("coin spacing and radius must not be negative")
	}
	for i, r := range c.Platforms.Rules {
		if r.Every <= 0 {
			return invalid("platform rule %d: every must be positive", i)
		}
	}

	return nil
}

func (c *LevelConfig) validateHoles() error {
	prevEnd := -1
	for i, h := range c.World.Holes {
		if h.Length <= 0 {
			return invalid("hole %d has non-positive length %d", i, h.Length)
		}
		if h.Start < 0 || h.Start+h.Length > c.World.Width {
			return invalid("hole %d [%d,%d) outside world", i, h.Start, h.Start+h.Length)
		}
		if h.Start < prevEnd {
			return invalid("hole %d overlaps or precedes the previous hole", i)
		}
		prevEnd = h.Start + h.Length
	}
	return nil
}

func (c *LevelConfig) validateEnemies() error {
	e := c.Enemies
	if len(e.SpawnTiles) > len(e.Roster) {
		return invalid("%d enemy spawns but only %d roster entries", len(e.SpawnTiles), len(e.Roster))
	}
	if len(e.SpawnTiles) == 0 {
		return nil
	}
	if e.Width <= 0 || e.Height <= 0 {
		return invalid("enemy size must be positive")
	}
	prev := -1
	for i, tx := range e.SpawnTiles {
		if tx <= prev {
			return invalid("enemy spawn tiles must be strictly ascending (index %d)", i)
		}
		if tx < 0 || tx >= c.World.Width {
			return invalid("enemy spawn tile %d outside world", tx)
		}
		if c.inHole(tx) {
			return invalid("enemy spawn tile %d lies inside a hole", tx)
		}
		prev = tx
	}
	return nil
}

func (c *LevelConfig) inHole(tx int) bool {
	for _, h := range c.World.Holes {
		if tx >= h.Start && tx < h.Start+h.Length {
			return true
		}
	}
	return false
}
