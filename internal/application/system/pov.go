package system

import (
	"math"

	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/pubsub"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

// POVMode is the state of the look-rotation machine
type POVMode int

const (
	// POVTracking applies look input directly
	POVTracking POVMode = iota
	// POVResetting springs both angles back to zero
	POVResetting
	// POVCentered means a reset finished and no look input arrived since
	POVCentered
)

func (m POVMode) String() string {
	switch m {
	case POVTracking:
		return "tracking"
	case POVResetting:
		return "resetting"
	case POVCentered:
		return "centered"
	default:
		return "unknown"
	}
}

// POVState is a snapshot of the look rotation
type POVState struct {
	Phi        float64
	Theta      float64
	WheelPitch float64
	Locked     bool
	Mode       POVMode
}

// Indicators is the HUD geometry derived from the viewport and the POV state.
// Positions are relative to the screen center, y up.
type Indicators struct {
	ViewHalfX  float64
	ViewHalfY  float64
	GaugeHalfY float64
	YawRadius  float64

	PitchY      float64 // Pitch gauge marker
	YawX, YawY  float64 // Yaw marker on its circle
	YawRotation float64
	SightLinesY float64 // Wheel pitch guide lines

	PitchBeyond bool // Pitch pinned at a limit
	YawBeyond   bool // Yaw pinned at a limit
	Visible     bool // Markers are hidden while centered
}

// POV is the point-of-view state machine of one character.
// It reads look input from InputEvent, follows the character's facing through
// FacingEvent, and publishes the resulting orientation as POVEvent.
type POV struct {
	bus   *event.Bus
	owner entity.EntityID

	lookSpeed       float64
	restoreSpeed    float64
	restoreMinAngle float64
	verticalLimit   float64
	horizontalLimit float64
	wheelStep       float64
	wheelRestore    float64
	epsilon         float64

	phi, theta   float64
	wheel        float64
	locked       bool
	mode         POVMode
	wheelReset   bool
	characterYaw float64

	dx, dy     float64
	wheelSteps int

	viewHalfX, viewHalfY float64
	gaugeHalfY           float64
	yawRadius            float64

	subs []pubsub.Subscription
}

// NewPOV creates a centered POV for the character owner on a w×h viewport
func NewPOV(bus *event.Bus, cfg config.ControlSettings, owner entity.EntityID, w, h int) *POV {
	p := &POV{
		bus:             bus,
		owner:           owner,
		lookSpeed:       cfg.LookSpeed,
		restoreSpeed:    cfg.RestoreSpeed,
		restoreMinAngle: cfg.RestoreMinAngle(),
		verticalLimit:   cfg.VerticalLimit(),
		horizontalLimit: cfg.HorizontalLimit(),
		wheelStep:       cfg.WheelStep(),
		wheelRestore:    cfg.WheelRestoreSpeed,
		epsilon:         cfg.InputEpsilon,
		mode:            POVCentered,
	}
	p.HandleResize(w, h)
	p.subs = append(p.subs,
		bus.Input.Subscribe(p.onInput),
		bus.Facing.Subscribe(p.onFacing),
	)
	return p
}

// Reset returns to a centered, unlocked view and drops buffered look input
func (p *POV) Reset() {
	p.phi, p.theta, p.wheel = 0, 0, 0
	p.locked = false
	p.wheelReset = false
	p.mode = POVCentered
	p.dx, p.dy = 0, 0
	p.wheelSteps = 0
}

// SetCharacterYaw sets the body yaw without a facing event, used on spawn
func (p *POV) SetCharacterYaw(yaw float64) {
	p.characterYaw = yaw
}

func (p *POV) onInput(e event.InputEvent) {
	l := e.Look
	p.dx += l.DX
	p.dy += l.DY
	p.wheelSteps += l.WheelSteps

	if l.LockPressed {
		p.locked = true
	}
	if l.RecenterReleased {
		p.locked = false
		p.mode = POVResetting
	}
	if l.WheelResetReleased {
		p.wheelReset = true
	}
}

func (p *POV) onFacing(e event.FacingEvent) {
	if e.Entity != p.owner {
		return
	}
	if p.locked {
		p.phi = clampAngle(p.phi-e.Delta, p.horizontalLimit)
	}
	p.characterYaw = e.Yaw
}

// Update advances the machine by dt and publishes the orientation
func (p *POV) Update(dt float64) {
	looking := abs(p.dx) > p.epsilon || abs(p.dy) > p.epsilon
	if looking && p.mode != POVTracking {
		p.mode = POVTracking
	}

	switch p.mode {
	case POVTracking:
		p.theta -= deg2rad(90*p.dy/p.gaugeHalfY) * p.lookSpeed
		p.phi -= deg2rad(135*p.dx/p.viewHalfX) * p.lookSpeed
		p.theta = clampAngle(p.theta, p.verticalLimit)
		p.phi = clampAngle(p.phi, p.horizontalLimit)
	case POVResetting:
		p.theta = p.restore(p.theta, dt)
		p.phi = p.restore(p.phi, dt)
		if p.theta == 0 && p.phi == 0 {
			p.mode = POVCentered
		}
	}

	p.updateWheel(dt)

	p.dx, p.dy = 0, 0
	p.wheelSteps = 0

	pitch, yaw := p.Orientation()
	p.bus.POV.Publish(event.POVEvent{
		Phi:        p.phi,
		Theta:      p.theta,
		WheelPitch: p.wheel,
		Locked:     p.locked,
		Pitch:      pitch,
		Yaw:        yaw,
	})
}

func (p *POV) updateWheel(dt float64) {
	p.wheel += float64(p.wheelSteps) * p.wheelStep

	if p.wheelReset {
		step := p.wheelRestore * dt
		if abs(p.wheel) <= step {
			p.wheel = 0
			p.wheelReset = false
		} else {
			p.wheel -= math.Copysign(step, p.wheel)
		}
	}

	p.wheel = clampAngle(p.wheel, p.verticalLimit)
}

// restore moves x one spring step toward zero without crossing it
func (p *POV) restore(x, dt float64) float64 {
	ax := abs(x)
	if ax < p.restoreMinAngle {
		return 0
	}
	step := ax*dt*p.restoreSpeed + p.restoreMinAngle
	if step >= ax {
		return 0
	}
	return x - math.Copysign(step, x)
}

// Orientation returns the camera pitch and yaw: look offsets plus wheel pitch and body yaw
func (p *POV) Orientation() (pitch, yaw float64) {
	return p.theta + p.wheel, p.phi + p.characterYaw
}

// State returns a snapshot of the look rotation
func (p *POV) State() POVState {
	return POVState{
		Phi:        p.phi,
		Theta:      p.theta,
		WheelPitch: p.wheel,
		Locked:     p.locked,
		Mode:       p.mode,
	}
}

// HandleResize recomputes the viewport-derived gauge geometry
func (p *POV) HandleResize(w, h int) {
	p.viewHalfX = math.Max(float64(w)/2, 1)
	p.viewHalfY = math.Max(float64(h)/2, 1)
	p.gaugeHalfY = math.Max(p.viewHalfY-32, 1)
	p.yawRadius = math.Max(p.viewHalfY/2-96, 0)
}

// Indicators derives the HUD marker geometry from the current state
func (p *POV) Indicators() Indicators {
	in := Indicators{
		ViewHalfX:   p.viewHalfX,
		ViewHalfY:   p.viewHalfY,
		GaugeHalfY:  p.gaugeHalfY,
		YawRadius:   p.yawRadius,
		PitchY:      p.gaugeHalfY * p.theta / p.verticalLimit,
		YawX:        -p.yawRadius * math.Cos(p.phi+math.Pi/2),
		YawY:        p.yawRadius * math.Sin(p.phi+math.Pi/2),
		YawRotation: -p.phi,
		SightLinesY: -p.wheel / (math.Pi / 2) * p.viewHalfY * 2.4,
		YawBeyond:   abs(p.phi) >= p.horizontalLimit,
		Visible:     p.theta != 0 || p.phi != 0,
	}
	if p.theta <= -p.verticalLimit {
		in.PitchY = -p.gaugeHalfY
		in.PitchBeyond = true
	} else if p.theta >= p.verticalLimit {
		in.PitchY = p.gaugeHalfY
		in.PitchBeyond = true
	}
	return in
}

// Dispose unsubscribes from the bus
func (p *POV) Dispose() {
	for _, s := range p.subs {
		s.Unsubscribe()
	}
	p.subs = nil
}

func clampAngle(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
