package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/minijump/internal/infrastructure/config"
)

func TestLoadStage_Default(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/minijump/configs").LoadLevel(config.DefaultLevel)
	require.NoError(t, err)

	level := LoadStage(cfg)

	assert.Equal(t, 1, level.Number)
	assert.Equal(t, 54, level.TileSize)
	assert.Equal(t, 200, level.Width)
	assert.Equal(t, 10800.0, level.PixelWidth())
	assert.Len(t, level.Holes, 4)

	ground, floating := 0, 0
	for _, p := range level.Platforms {
		if p.Ground {
			ground++
			assert.Equal(t, 486.0, p.Y)
			assert.Nil(t, level.HoleAt(level.TileAt(p.X)), "floor tile at x=%v lies in a hole", p.X)
		} else {
			floating++
		}
	}
	// 200 columns minus 9 hole columns; 13 mid platforms and 9 high ones
	assert.Equal(t, 191, ground)
	assert.Equal(t, 22, floating)

	require.Len(t, level.Coins, 33)
	assert.Equal(t, 4*54.0+27, level.Coins[0].X)
	assert.Equal(t, 334.0, level.Coins[0].Y)
	assert.Equal(t, 10.0, level.Coins[0].R)

	assert.Equal(t, 5184.0, level.Goal.X)
	assert.Equal(t, 216.0, level.Goal.Y)
	assert.Equal(t, 648.0, level.FallLimit)
}

func TestLoadStage_PlatformRules(t *testing.T) {
	cfg := createTestConfig()
	cfg.Platforms.Rules = []config.PlatformRule{
		{Every: 10, Offset: 0, RowsAboveFloor: 2, SkipHoles: true},
		{Every: 30, Offset: 0, RowsAboveFloor: 4},
	}
	cfg.Platforms.Extra = []config.RectConfig{{X: 5, Y: 6, W: 7, H: 8, Ground: true}}

	level := LoadStage(cfg)

	var mid, high []float64
	for _, p := range level.Platforms {
		switch p.Y {
		case 378:
			mid = append(mid, p.X)
		case 270:
			high = append(high, p.X)
		}
	}
	// Column 30 is a hole: skipped by the first rule, kept by the second
	assert.Equal(t, []float64{0, 540, 1080, 2160, 2700}, mid)
	assert.Equal(t, []float64{0, 1620}, high)

	last := level.Platforms[len(level.Platforms)-1]
	assert.Equal(t, 5.0, last.X)
	assert.True(t, last.Ground)
}

func TestLoadStage_Coins(t *testing.T) {
	cfg := createTestConfig()
	cfg.Coins = config.CoinsConfig{StartTile: 4, Every: 20, RowsAboveFloor: 3, OffsetY: 10, Radius: 10}

	level := LoadStage(cfg)

	require.Len(t, level.Coins, 3)
	assert.Equal(t, 24*54.0+27, level.Coins[1].X)
	for _, c := range level.Coins {
		assert.False(t, c.Taken)
	}
}
