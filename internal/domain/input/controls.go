package input

// Button is a standard-gamepad button in device order
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonLT
	ButtonRT
	ButtonBack
	ButtonStart
	ButtonLSB
	ButtonRSB
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonGuide

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"a", "b", "x", "y", "lb", "rb", "lt", "rt", "back", "start",
	"lsb", "rsb", "up", "down", "left", "right", "guide",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// ButtonByName resolves a button from its short name ("a", "lsb", ...)
func ButtonByName(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// Axis is a standard-gamepad axis in device order
type Axis int

const (
	AxisLSX Axis = iota
	AxisLSY
	AxisRSX
	AxisRSY
	AxisLT2 // Analog trigger, rests at -1
	AxisRT2 // Analog trigger, rests at -1

	AxisCount
)

var axisNames = [AxisCount]string{"lsx", "lsy", "rsx", "rsy", "lt2", "rt2"}

func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return "unknown"
	}
	return axisNames[a]
}

// AxisByName resolves an axis from its short name ("lsx", "rt2", ...)
func AxisByName(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}

// IsTrigger reports whether the axis is an analog trigger resting at -1
func (a Axis) IsTrigger() bool {
	return a == AxisLT2 || a == AxisRT2
}

// Control indexes buttons and axes in one space: buttons first, then axes
type Control uint8

const ControlCount = Control(ButtonCount) + Control(AxisCount)

// ButtonControl returns the control index of a button
func ButtonControl(b Button) Control {
	return Control(b)
}

// AxisControl returns the control index of an axis
func AxisControl(a Axis) Control {
	return Control(ButtonCount) + Control(a)
}

func (c Control) String() string {
	if c < Control(ButtonCount) {
		return Button(c).String()
	}
	return Axis(c - Control(ButtonCount)).String()
}

// PendingSet holds the controls that fired and have not been released yet
type PendingSet uint32

// Has reports whether c is pending
func (p PendingSet) Has(c Control) bool {
	return p&(1<<c) != 0
}

// Add marks c pending
func (p *PendingSet) Add(c Control) {
	*p |= 1 << c
}

// Remove clears c and reports whether it was pending
func (p *PendingSet) Remove(c Control) bool {
	was := p.Has(c)
	*p &^= 1 << c
	return was
}

// Len returns the number of pending controls
func (p PendingSet) Len() int {
	n := 0
	for v := p; v != 0; v &= v - 1 {
		n++
	}
	return n
}
