package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings maps each intent to the keys that assert it
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultKeyBindings returns arrow keys and WASD, with space also jumping
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:  []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	}
}

// InputSystem samples the keyboard into an InputState
type InputSystem struct {
	bindings KeyBindings
	pressed  func(ebiten.Key) bool
}

// NewInputSystem creates a new input system reading the ebiten keyboard
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{
		bindings: bindings,
		pressed:  ebiten.IsKeyPressed,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  s.any(s.bindings.Left),
		Right: s.any(s.bindings.Right),
		Jump:  s.any(s.bindings.Jump),
	}
}

func (s *InputSystem) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}
