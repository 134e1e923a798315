package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/fpcore/internal/domain/input"
)

// Replayer plays recorded snapshots back, one per Poll.
// It satisfies device.Source.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// DecodeReplay reads replay data from r
func DecodeReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.FrameDt <= 0 {
		return nil, fmt.Errorf("invalid replay: frameDt %v", data.FrameDt)
	}
	return &data, nil
}

// Next returns the snapshot for the current frame and advances
func (r *Replayer) Next() (input.DeviceSnapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.NewSnapshot(), false
	}
	f := r.data.Frames[r.frame]
	r.frame++
	return f.Snapshot(), true
}

// Poll returns the next snapshot, or a device at rest once the replay is exhausted
func (r *Replayer) Poll() input.DeviceSnapshot {
	s, _ := r.Next()
	return s
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data holding the same controls every frame
func CreateTestReplayData(frames int, controls map[string]float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Session:   uuid.NewString(),
		Player:    "hero1",
		FrameDt:   1.0 / 60.0,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]Frame, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = Frame{F: i, Controls: controls}
	}
	return data
}
