package system

import (
	"github.com/younwookim/minijump/internal/domain/entity"
	"github.com/younwookim/minijump/internal/infrastructure/config"
)

// Progress is the per-level progression state.
// It is reset only by an explicit level restart.
type Progress struct {
	Finished      bool
	CoinCount     int
	NextEnemy     int
	VictoryFrames int
}

// Camera is the horizontal viewport into the level
type Camera struct {
	X    float64
	W, H float64
}

// ProgressionSystem handles goal detection, the victory timer and the camera
type ProgressionSystem struct {
	level   *entity.Level
	goal    config.GoalConfig
	display config.DisplayConfig
}

// NewProgressionSystem creates a new progression system
func NewProgressionSystem(goal config.GoalConfig, display config.DisplayConfig, level *entity.Level) *ProgressionSystem {
	return &ProgressionSystem{
		level:   level,
		goal:    goal,
		display: display,
	}
}

// NewCamera returns a camera sized to the viewport
func (s *ProgressionSystem) NewCamera() Camera {
	return Camera{
		W: float64(s.display.ScreenWidth),
		H: float64(s.display.ScreenHeight),
	}
}

// GoalRect returns the goal rectangle as used for detection
func (s *ProgressionSystem) GoalRect() entity.Rect {
	return s.level.Goal.Pad(s.goal.Padding)
}

// CheckGoal marks the level finished when the player touches the goal.
// Returns true only on the step the level becomes finished.
func (s *ProgressionSystem) CheckGoal(p *entity.Player, prog *Progress) bool {
	if prog.Finished {
		return false
	}
	if !p.Rect().Intersects(s.GoalRect()) {
		return false
	}
	prog.Finished = true
	prog.VictoryFrames = 0
	return true
}

// AdvanceVictory ticks the cosmetic victory timer of a finished level
func (s *ProgressionSystem) AdvanceVictory(prog *Progress) {
	if prog.Finished {
		prog.VictoryFrames++
	}
}

// VictoryProgress returns the eased 0..1 progress of the victory animation
func (s *ProgressionSystem) VictoryProgress(prog *Progress) float64 {
	if !prog.Finished || s.goal.VictoryFrames <= 0 {
		return 0
	}
	t := entity.Clamp(float64(prog.VictoryFrames)/float64(s.goal.VictoryFrames), 0, 1)
	return entity.EaseOutCubic(t)
}

// UpdateCamera centers the camera on the player, clamped to the level
func (s *ProgressionSystem) UpdateCamera(cam *Camera, playerX float64) {
	cam.X = CameraX(playerX, cam.W, s.level.PixelWidth())
}

// CameraX returns the camera offset for a player position.
// The result is always within [0, max(0, levelWidth-viewport)].
func CameraX(playerX, viewport, levelWidth float64) float64 {
	maxX := levelWidth - viewport
	if maxX < 0 {
		maxX = 0
	}
	return entity.Clamp(playerX-viewport/2, 0, maxX)
}
