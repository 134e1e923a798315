package system

import (
	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/input"
)

var (
	nonRepeatableButtons = []input.Button{
		input.ButtonA, input.ButtonB, input.ButtonX, input.ButtonY,
		input.ButtonLT, input.ButtonRT, input.ButtonLSB, input.ButtonRSB,
	}
	nonRepeatableAxes = []input.Axis{input.AxisLT2, input.AxisRT2}
)

// direction is a movement or turn control whose rising edge can become an urgency action
type direction uint8

const (
	dirLeft direction = iota
	dirRight
	dirForward
	dirBackward
	dirTurnLeft
	dirTurnRight
)

// InputClassifier turns device snapshots into action frames.
//
// Non-repeatable controls fire once per press and stay pending until released.
// Holding x ("mashed") turns the rising edge of a direction into its quick variant;
// only the first such control in evaluation order claims the tick's urgency.
type InputClassifier struct {
	bus        *event.Bus
	epsilon    float64
	stickSpeed float64

	pending input.PendingSet
	held    uint8 // directions active on the previous connected tick
}

// NewInputClassifier creates a classifier publishing to bus
func NewInputClassifier(bus *event.Bus, epsilon, stickSpeed float64) *InputClassifier {
	return &InputClassifier{
		bus:        bus,
		epsilon:    epsilon,
		stickSpeed: stickSpeed,
	}
}

// Pending returns the controls waiting for release
func (c *InputClassifier) Pending() input.PendingSet {
	return c.pending
}

// Reset forgets every pending control
func (c *InputClassifier) Reset() {
	c.pending = 0
	c.held = 0
}

// Classify evaluates one snapshot and publishes the result.
// A disconnected device yields an empty event and leaves pending state untouched.
func (c *InputClassifier) Classify(s input.DeviceSnapshot) event.InputEvent {
	var ev event.InputEvent
	if !s.Connected {
		c.bus.Input.Publish(ev)
		return ev
	}

	c.release(s, &ev.Look)

	mashed := c.pressed(s.Button(input.ButtonX))
	c.classifyButtons(s, mashed, &ev)
	c.classifyAxes(s, mashed, &ev)

	c.bus.Input.Publish(ev)
	return ev
}

func (c *InputClassifier) release(s input.DeviceSnapshot, look *input.LookInput) {
	for _, b := range nonRepeatableButtons {
		if c.pressed(s.Button(b)) {
			continue
		}
		if !c.pending.Remove(input.ButtonControl(b)) {
			continue
		}
		switch b {
		case input.ButtonRSB:
			look.RecenterReleased = true
		case input.ButtonY:
			look.WheelResetReleased = true
		}
	}

	for _, a := range nonRepeatableAxes {
		if s.Axis(a) < -1+c.epsilon {
			c.pending.Remove(input.AxisControl(a))
		}
	}
}

func (c *InputClassifier) classifyButtons(s input.DeviceSnapshot, mashed bool, ev *event.InputEvent) {
	f := &ev.Frame
	for b := input.Button(0); b < input.ButtonCount; b++ {
		v := s.Button(b)
		on := c.pressed(v)

		switch b {
		case input.ButtonA:
			if on && c.edge(input.ButtonControl(b)) {
				f.Set(input.ActionJump, v)
			}
		case input.ButtonB, input.ButtonRT:
			if on && c.edge(input.ButtonControl(b)) {
				f.Set(input.ActionTrigger, v)
			}
		case input.ButtonX, input.ButtonY, input.ButtonLT, input.ButtonLSB:
			if on {
				c.edge(input.ButtonControl(b))
			}
		case input.ButtonRSB:
			if on && c.edge(input.ButtonControl(b)) {
				ev.Look.LockPressed = true
			}
		case input.ButtonLB:
			c.direction(f, dirLeft, on, v, mashed, input.ActionMoveLeft, input.ActionQuickMoveLeft)
		case input.ButtonRB:
			c.direction(f, dirRight, on, v, mashed, input.ActionMoveRight, input.ActionQuickMoveRight)
		case input.ButtonUp:
			if on {
				ev.Look.WheelSteps++
			}
		case input.ButtonDown:
			if on {
				ev.Look.WheelSteps--
			}
		}
	}
}

func (c *InputClassifier) classifyAxes(s input.DeviceSnapshot, mashed bool, ev *event.InputEvent) {
	f := &ev.Frame
	for a := input.Axis(0); a < input.AxisCount; a++ {
		v := s.Axis(a)

		switch a {
		case input.AxisLSX:
			c.direction(f, dirTurnRight, v > c.epsilon, v, mashed, input.ActionRotateRight, input.ActionQuickTurnRight)
			c.direction(f, dirTurnLeft, v < -c.epsilon, -v, mashed, input.ActionRotateLeft, input.ActionQuickTurnLeft)
		case input.AxisLSY:
			forward := input.ActionMoveForward
			if c.sprinting(s) {
				forward = input.ActionSplint
			}
			c.direction(f, dirForward, v < -c.epsilon, -v, mashed, forward, input.ActionQuickMoveForward)
			c.direction(f, dirBackward, v > c.epsilon, v, mashed, input.ActionMoveBackward, input.ActionQuickMoveBackward)
		case input.AxisRSX:
			if abs(v) > c.epsilon {
				ev.Look.DX = v * c.stickSpeed
			}
		case input.AxisRSY:
			if abs(v) > c.epsilon {
				ev.Look.DY = v * c.stickSpeed
			}
		case input.AxisLT2:
			if v > 0 {
				c.edge(input.AxisControl(a))
			}
		case input.AxisRT2:
			if v > 0 && c.edge(input.AxisControl(a)) {
				f.Set(input.ActionTrigger, v)
			}
		}
	}
}

// direction emits the action of one directional control.
// A rising edge while mashed claims the quick variant if no other control has.
func (c *InputClassifier) direction(f *input.ActionFrame, d direction, on bool, v float64, mashed bool, normal, quick input.Action) {
	bit := uint8(1) << d
	rising := on && c.held&bit == 0
	if on {
		c.held |= bit
	} else {
		c.held &^= bit
		return
	}

	if mashed && rising && f.Claim(quick) {
		return
	}
	f.Set(normal, v)
}

// sprinting reports whether a dash modifier is held: lsb, lt, or lt2 past its midpoint
func (c *InputClassifier) sprinting(s input.DeviceSnapshot) bool {
	return c.pressed(s.Button(input.ButtonLSB)) ||
		c.pressed(s.Button(input.ButtonLT)) ||
		s.Axis(input.AxisLT2) > 0
}

// edge marks ctrl pending and reports whether this is a new press
func (c *InputClassifier) edge(ctrl input.Control) bool {
	if c.pending.Has(ctrl) {
		return false
	}
	c.pending.Add(ctrl)
	return true
}

func (c *InputClassifier) pressed(v float64) bool {
	return v > c.epsilon
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
