package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/minijump/internal/application/session"
	"github.com/younwookim/minijump/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Jump:  fi.J,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Result summarizes a headless replay run
type Result struct {
	Frames   int
	Finished bool
	// ClearFrame is the frame the goal was reached on, 0 if never
	ClearFrame int
	Coins      int
	Final      session.Snapshot
}

// Run feeds every remaining recorded input to the session.
// The session is not restarted first.
func Run(s *session.Session, r *Replayer) Result {
	var res Result
	for {
		input, ok := r.GetInput()
		if !ok {
			break
		}
		snap := s.Step(input)
		res.Frames++
		for _, e := range snap.Events {
			if e.Kind == system.EventGoal {
				res.ClearFrame = snap.Frame
			}
		}
		res.Final = snap
	}

	res.Finished = res.Final.Finished
	res.Coins = res.Final.CoinCount
	return res
}

// CreateTestReplayData creates replay data holding the same input on every frame
func CreateTestReplayData(level string, frames int, input system.InputState) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			L: input.Left,
			R: input.Right,
			J: input.Jump,
		}
	}

	return data
}
