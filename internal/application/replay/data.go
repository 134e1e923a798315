package replay

import "github.com/younwookim/fpcore/internal/domain/input"

// Version is written to every recording
const Version = "2.0"

// Frame records the device snapshot of a single tick.
// Only controls away from their rest value are stored.
type Frame struct {
	F        int                `json:"f"`             // Frame number
	Off      bool               `json:"off,omitempty"` // Device disconnected
	Controls map[string]float64 `json:"v,omitempty"`   // Control name to value
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version    string  `json:"version"`
	Session    string  `json:"session"`
	Player     string  `json:"player"`
	StageIndex int     `json:"stageIndex"`
	FrameDt    float64 `json:"frameDt"`
	StartTime  string  `json:"startTime"`
	Frames     []Frame `json:"frames"`
}

// FrameFromSnapshot encodes s as frame number f
func FrameFromSnapshot(f int, s input.DeviceSnapshot) Frame {
	frame := Frame{F: f}
	if !s.Connected {
		frame.Off = true
		return frame
	}

	rest := input.NewSnapshot()
	for b := input.Button(0); b < input.ButtonCount; b++ {
		if v := s.Button(b); v != rest.Button(b) {
			frame.set(b.String(), v)
		}
	}
	for a := input.Axis(0); a < input.AxisCount; a++ {
		if v := s.Axis(a); v != rest.Axis(a) {
			frame.set(a.String(), v)
		}
	}
	return frame
}

func (f *Frame) set(name string, v float64) {
	if f.Controls == nil {
		f.Controls = make(map[string]float64)
	}
	f.Controls[name] = v
}

// Snapshot decodes the frame back into a device snapshot
func (f Frame) Snapshot() input.DeviceSnapshot {
	if f.Off {
		return input.Disconnected()
	}
	return input.NewSnapshot().With(f.Controls)
}
