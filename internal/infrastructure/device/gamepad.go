package device

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/fpcore/internal/domain/input"
)

// standardButtons maps each button to its position in the standard gamepad layout
var standardButtons = [input.ButtonCount]ebiten.StandardGamepadButton{
	input.ButtonA:     ebiten.StandardGamepadButtonRightBottom,
	input.ButtonB:     ebiten.StandardGamepadButtonRightRight,
	input.ButtonX:     ebiten.StandardGamepadButtonRightLeft,
	input.ButtonY:     ebiten.StandardGamepadButtonRightTop,
	input.ButtonLB:    ebiten.StandardGamepadButtonFrontTopLeft,
	input.ButtonRB:    ebiten.StandardGamepadButtonFrontTopRight,
	input.ButtonLT:    ebiten.StandardGamepadButtonFrontBottomLeft,
	input.ButtonRT:    ebiten.StandardGamepadButtonFrontBottomRight,
	input.ButtonBack:  ebiten.StandardGamepadButtonCenterLeft,
	input.ButtonStart: ebiten.StandardGamepadButtonCenterRight,
	input.ButtonLSB:   ebiten.StandardGamepadButtonLeftStick,
	input.ButtonRSB:   ebiten.StandardGamepadButtonRightStick,
	input.ButtonUp:    ebiten.StandardGamepadButtonLeftTop,
	input.ButtonDown:  ebiten.StandardGamepadButtonLeftBottom,
	input.ButtonLeft:  ebiten.StandardGamepadButtonLeftLeft,
	input.ButtonRight: ebiten.StandardGamepadButtonLeftRight,
	input.ButtonGuide: ebiten.StandardGamepadButtonCenterCenter,
}

var standardSticks = map[input.Axis]ebiten.StandardGamepadAxis{
	input.AxisLSX: ebiten.StandardGamepadAxisLeftStickHorizontal,
	input.AxisLSY: ebiten.StandardGamepadAxisLeftStickVertical,
	input.AxisRSX: ebiten.StandardGamepadAxisRightStickHorizontal,
	input.AxisRSY: ebiten.StandardGamepadAxisRightStickVertical,
}

// Gamepad polls the first connected standard-layout gamepad.
// With Keyboard set, the keyboard stands in while no gamepad is connected.
type Gamepad struct {
	Keyboard bool

	log       *slog.Logger
	ids       []ebiten.GamepadID
	connected bool
	id        ebiten.GamepadID
}

// NewGamepad creates a poller; it must be polled from the ebiten update loop
func NewGamepad(keyboard bool, log *slog.Logger) *Gamepad {
	return &Gamepad{Keyboard: keyboard, log: log}
}

func (g *Gamepad) Poll() input.DeviceSnapshot {
	id, ok := g.find()
	if ok != g.connected || (ok && id != g.id) {
		g.log.Info("gamepad changed", "connected", ok, "id", int(id))
		g.connected, g.id = ok, id
	}

	if !ok {
		if g.Keyboard {
			return KeyboardSnapshot(ebiten.IsKeyPressed)
		}
		return input.Disconnected()
	}

	s := input.NewSnapshot()
	for b, sb := range standardButtons {
		s.Buttons[b] = ebiten.StandardGamepadButtonValue(id, sb)
	}
	for a, sa := range standardSticks {
		s.Axes[a] = ebiten.StandardGamepadAxisValue(id, sa)
	}
	s.Axes[input.AxisLT2] = TriggerAxis(s.Buttons[input.ButtonLT])
	s.Axes[input.AxisRT2] = TriggerAxis(s.Buttons[input.ButtonRT])
	return s
}

func (g *Gamepad) find() (ebiten.GamepadID, bool) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	for _, id := range g.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

// TriggerAxis converts an analog trigger button value in [0,1] to the
// trigger axis range [-1,1], resting at -1
func TriggerAxis(v float64) float64 {
	return 2*v - 1
}
