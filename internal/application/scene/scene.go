// Package scene defines the Scene interface for game screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned by a scene's Update to end the game normally
var ErrQuit = errors.New("quit")

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to end the game, any other error to abort it.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	OnExit()
}
