package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/fpcore/internal/domain/input"
)

// Recorder captures device snapshots for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder starts a recording session with a fresh session id
func NewRecorder(player string, stageIndex int, frameDt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    Version,
			Session:    uuid.NewString(),
			Player:     player,
			StageIndex: stageIndex,
			FrameDt:    frameDt,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]Frame, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame appends one tick's snapshot
func (r *Recorder) RecordFrame(s input.DeviceSnapshot) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameFromSnapshot(r.frame, s))
	r.frame++
}

// Encode writes the recording as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Session returns the recording's session id
func (r *Recorder) Session() string {
	return r.data.Session
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
