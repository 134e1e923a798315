package input

// DeviceSnapshot is the raw state of one device for one tick.
// Buttons are in [0,1], axes in [-1,1].
type DeviceSnapshot struct {
	Connected bool
	Buttons   [ButtonCount]float64
	Axes      [AxisCount]float64
}

// NewSnapshot returns a connected device at rest: everything 0, triggers at -1
func NewSnapshot() DeviceSnapshot {
	s := DeviceSnapshot{Connected: true}
	s.Axes[AxisLT2] = -1
	s.Axes[AxisRT2] = -1
	return s
}

// Disconnected returns the snapshot of an absent device
func Disconnected() DeviceSnapshot {
	return DeviceSnapshot{}
}

// Button returns the value of b
func (s DeviceSnapshot) Button(b Button) float64 {
	return s.Buttons[b]
}

// Axis returns the value of a
func (s DeviceSnapshot) Axis(a Axis) float64 {
	return s.Axes[a]
}

// Set assigns a control by name, clamping to its range.
// Returns false if the name is neither a button nor an axis.
func (s *DeviceSnapshot) Set(name string, v float64) bool {
	if b, ok := ButtonByName(name); ok {
		s.Buttons[b] = clamp(v, 0, 1)
		return true
	}
	if a, ok := AxisByName(name); ok {
		s.Axes[a] = clamp(v, -1, 1)
		return true
	}
	return false
}

// With returns a copy with the named controls set
func (s DeviceSnapshot) With(values map[string]float64) DeviceSnapshot {
	for name, v := range values {
		s.Set(name, v)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
