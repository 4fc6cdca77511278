package system

// InputState holds the three intents sampled once per simulation step.
// Jump is the held state; the player system derives the press edge.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}
