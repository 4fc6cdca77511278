package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody_Rect(t *testing.T) {
	b := Body{X: 10, Y: 20, W: 48, H: 64}

	r := b.Rect()
	assert.Equal(t, Rect{X: 10, Y: 20, W: 48, H: 64}, r)
	assert.Equal(t, 84.0, b.Bottom())
	assert.Equal(t, 34.0, b.CenterX())
}

func TestBody_Stop(t *testing.T) {
	b := Body{VX: 2.2, VY: -16}
	b.Stop()

	assert.Zero(t, b.VX)
	assert.Zero(t, b.VY)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(108, 366, 48, 64)

	require.NotNil(t, p)
	assert.Equal(t, 108.0, p.X)
	assert.Equal(t, 366.0, p.Y)
	assert.Equal(t, FacingRight, p.Facing)
	assert.Equal(t, 108.0, p.LastSafeX, "checkpoint starts at the spawn point")
	assert.Equal(t, 366.0, p.LastSafeY)
	assert.False(t, p.IsInvulnerable())
}

func TestPlayer_Tick(t *testing.T) {
	p := NewPlayer(0, 0, 48, 64)
	p.Invulnerable = 2

	p.Tick()
	assert.Equal(t, 1, p.Invulnerable)
	assert.True(t, p.IsInvulnerable())

	p.Tick()
	p.Tick()
	assert.Equal(t, 0, p.Invulnerable, "counter is floored at zero")
	assert.False(t, p.IsInvulnerable())
}
