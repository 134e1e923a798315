package device

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/fpcore/internal/domain/input"
)

var keyButtons = map[ebiten.Key]input.Button{
	ebiten.KeySpace:       input.ButtonA,
	ebiten.KeyJ:           input.ButtonB,
	ebiten.KeyShiftLeft:   input.ButtonX,
	ebiten.KeyR:           input.ButtonY,
	ebiten.KeyQ:           input.ButtonLB,
	ebiten.KeyE:           input.ButtonRB,
	ebiten.KeyControlLeft: input.ButtonLSB,
	ebiten.KeyL:           input.ButtonRSB,
	ebiten.KeyPageUp:      input.ButtonUp,
	ebiten.KeyPageDown:    input.ButtonDown,
}

type keyAxis struct {
	key  ebiten.Key
	axis input.Axis
	v    float64
}

var keyAxes = []keyAxis{
	{ebiten.KeyW, input.AxisLSY, -1},
	{ebiten.KeyS, input.AxisLSY, 1},
	{ebiten.KeyA, input.AxisLSX, -1},
	{ebiten.KeyD, input.AxisLSX, 1},
	{ebiten.KeyArrowLeft, input.AxisRSX, -1},
	{ebiten.KeyArrowRight, input.AxisRSX, 1},
	{ebiten.KeyArrowUp, input.AxisRSY, -1},
	{ebiten.KeyArrowDown, input.AxisRSY, 1},
}

// KeyboardSnapshot builds a connected snapshot from keyboard state:
// WASD is the left stick and the arrows the right stick. Space jumps and J fires.
// Left shift mashes for quick moves; left control sprints.
func KeyboardSnapshot(pressed func(ebiten.Key) bool) input.DeviceSnapshot {
	s := input.NewSnapshot()
	for k, b := range keyButtons {
		if pressed(k) {
			s.Buttons[b] = 1
		}
	}
	for _, ka := range keyAxes {
		if pressed(ka.key) {
			s.Axes[ka.axis] += ka.v
		}
	}
	return s
}
