package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(0, "mama", 972, 382, 104, 104, 1.8)

	require.NotNil(t, enemy)
	assert.Equal(t, 0, enemy.Slot)
	assert.Equal(t, "mama", enemy.Name)
	assert.True(t, enemy.Active)
	assert.Equal(t, FacingLeft, enemy.Facing)
	assert.Equal(t, -1.8, enemy.VX)
}

func TestEnemy_Turn(t *testing.T) {
	enemy := NewEnemy(0, "mama", 0, 0, 10, 10, 2)

	enemy.Turn()
	assert.Equal(t, FacingRight, enemy.Facing)
	assert.Equal(t, 2.0, enemy.VX)

	enemy.Turn()
	assert.Equal(t, FacingLeft, enemy.Facing)
	assert.Equal(t, -2.0, enemy.VX)
}

func TestEnemy_Deactivate(t *testing.T) {
	enemy := NewEnemy(0, "mama", 500, 300, 10, 10, 2)
	enemy.VY = 3

	enemy.Deactivate()

	assert.False(t, enemy.Active)
	assert.Zero(t, enemy.VX)
	assert.Zero(t, enemy.VY)
	assert.Equal(t, 500.0, enemy.X, "deactivation does not move the enemy off-world")
}

func TestBossState_String(t *testing.T) {
	tests := []struct {
		state    BossState
		expected string
	}{
		{BossSleeping, "Sleeping"},
		{BossFalling, "Falling"},
		{BossHopping, "Hopping"},
		{BossDefeated, "Defeated"},
		{BossState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestBoss_Damage(t *testing.T) {
	boss := NewBoss(96, 96, 3, 2.4)
	assert.False(t, boss.Spawned())
	assert.False(t, boss.Damage(), "sleeping boss cannot be damaged")
	assert.Equal(t, 3, boss.HP)

	boss.State = BossHopping
	assert.True(t, boss.Alive())

	assert.False(t, boss.Damage())
	assert.False(t, boss.Damage())
	assert.True(t, boss.Damage())

	assert.Equal(t, 0, boss.HP)
	assert.Equal(t, BossDefeated, boss.State)
	assert.False(t, boss.Alive())
	assert.True(t, boss.Spawned())

	assert.False(t, boss.Damage(), "defeated boss ignores further hits")
	assert.Equal(t, 0, boss.HP)
}
