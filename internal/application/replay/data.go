package replay

// Version is written into every recorded file
const Version = "1.0"

// FrameInput records the three intents for a single step
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump held
}

// ReplayData contains all data needed to replay a session.
// The simulation is deterministic, so the level and the inputs suffice.
type ReplayData struct {
	Version     string       `json:"version"`
	Level       string       `json:"level"`
	LevelNumber int          `json:"levelNumber"`
	StartTime   string       `json:"startTime"`
	Frames      []FrameInput `json:"frames"`
}
