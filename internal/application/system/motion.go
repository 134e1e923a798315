package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/input"
	"github.com/younwookim/fpcore/internal/domain/pubsub"
)

// MotionController turns classified actions into velocity and facing changes
// for one character. It never writes the collider center: the registry
// integrates the velocity it leaves behind.
//
// Continuous actions (move, rotate, splint) apply on every sub-step until the
// next frame arrives. Jump, trigger and urgency actions are consumed once.
type MotionController struct {
	character *entity.Character
	bus       *event.Bus

	urgencyDuration float64
	cooldown        float64

	frame     input.ActionFrame
	fresh     bool
	lookYaw   float64 // POV yaw offset from the last POV event
	lookPitch float64 // POV pitch from the last POV event

	subs []pubsub.Subscription
}

// NewMotionController binds a controller to c and subscribes it to input and POV events
func NewMotionController(c *entity.Character, bus *event.Bus, urgencyDuration float64) *MotionController {
	m := &MotionController{
		character:       c,
		bus:             bus,
		urgencyDuration: urgencyDuration,
	}
	m.subs = append(m.subs,
		bus.Input.Subscribe(m.onInput),
		bus.POV.Subscribe(m.onPOV),
	)
	return m
}

// Character returns the controlled character
func (m *MotionController) Character() *entity.Character {
	return m.character
}

// Cooldown returns the seconds left before another urgency action is accepted
func (m *MotionController) Cooldown() float64 {
	return m.cooldown
}

func (m *MotionController) onInput(e event.InputEvent) {
	m.frame = e.Frame
	m.fresh = true
}

func (m *MotionController) onPOV(e event.POVEvent) {
	m.lookYaw = e.Phi
	m.lookPitch = e.Pitch
}

// Update applies the current frame for one sub-step of length dt
func (m *MotionController) Update(dt float64) {
	if m.cooldown > 0 {
		m.cooldown = math.Max(0, m.cooldown-dt)
	}

	c := m.character
	if !c.Alive || !c.Active {
		m.fresh = false
		return
	}

	if m.fresh && m.cooldown > 0 {
		m.fallBack()
	}
	m.applyContinuous(dt)

	if !m.fresh {
		return
	}
	m.fresh = false

	m.applyUrgency()
	m.applyJump()
	m.applyTrigger()
}

func (m *MotionController) applyContinuous(dt float64) {
	c := m.character
	f := &m.frame

	speed := c.Stats.AirSpeed
	if c.Grounded {
		speed = c.Stats.Speed
	}

	forward, side := c.Forward(), c.Side()
	var accel mgl64.Vec3
	if v, ok := f.Get(input.ActionMoveForward); ok {
		accel = accel.Add(forward.Mul(v * speed))
	}
	if v, ok := f.Get(input.ActionSplint); ok {
		accel = accel.Add(forward.Mul(v * speed * c.Stats.Sprint))
	}
	if v, ok := f.Get(input.ActionMoveBackward); ok {
		accel = accel.Sub(forward.Mul(v * speed))
	}
	if v, ok := f.Get(input.ActionMoveLeft); ok {
		accel = accel.Sub(side.Mul(v * speed))
	}
	if v, ok := f.Get(input.ActionMoveRight); ok {
		accel = accel.Add(side.Mul(v * speed))
	}
	c.Velocity = c.Velocity.Add(accel.Mul(dt))

	var turn float64
	if v, ok := f.Get(input.ActionRotateLeft); ok {
		turn += v
	}
	if v, ok := f.Get(input.ActionRotateRight); ok {
		turn -= v
	}
	if turn != 0 {
		m.turn(turn * c.Stats.TurnSpeed * dt)
	}
}

// fallBack turns a quick action refused by the cooldown into its normal action
func (m *MotionController) fallBack() {
	u := m.frame.Urgency
	if u == input.ActionNone {
		return
	}
	v, _ := m.frame.Get(u)
	m.frame.Set(u.Normal(), v)
}

func (m *MotionController) applyUrgency() {
	urgency := m.frame.Urgency
	if urgency == input.ActionNone || m.cooldown > 0 {
		return
	}

	c := m.character
	forward, side := c.Forward(), c.Side()
	impulse := c.Stats.UrgencyMove

	switch urgency {
	case input.ActionQuickMoveForward:
		c.Velocity = c.Velocity.Add(forward.Mul(impulse))
	case input.ActionQuickMoveBackward:
		c.Velocity = c.Velocity.Sub(forward.Mul(impulse))
	case input.ActionQuickMoveLeft:
		c.Velocity = c.Velocity.Sub(side.Mul(impulse))
	case input.ActionQuickMoveRight:
		c.Velocity = c.Velocity.Add(side.Mul(impulse))
	case input.ActionQuickTurnLeft:
		m.turn(c.Stats.UrgencyTurn)
	case input.ActionQuickTurnRight:
		m.turn(-c.Stats.UrgencyTurn)
	default:
		return
	}
	m.cooldown = m.urgencyDuration
}

func (m *MotionController) applyJump() {
	c := m.character
	if !m.frame.Has(input.ActionJump) || !c.Grounded {
		return
	}
	c.Velocity[1] = c.Stats.JumpPower
	c.Grounded = false
}

func (m *MotionController) applyTrigger() {
	c := m.character
	if !m.frame.Has(input.ActionTrigger) || c.Ammo == nil {
		return
	}
	c.Ammo.Fire(c.Position(), m.Aim(), c.ID)
}

// Aim returns the unit direction of the point of view: body facing plus look offset
func (m *MotionController) Aim() mgl64.Vec3 {
	yaw := m.character.Facing + m.lookYaw
	pitch := m.lookPitch
	cp := math.Cos(pitch)
	return mgl64.Vec3{-math.Sin(yaw) * cp, math.Sin(pitch), -math.Cos(yaw) * cp}
}

func (m *MotionController) turn(delta float64) {
	c := m.character
	c.Facing += delta
	m.bus.Facing.Publish(event.FacingEvent{Entity: c.ID, Yaw: c.Facing, Delta: delta})
}

// Dispose unsubscribes from the bus
func (m *MotionController) Dispose() {
	for _, s := range m.subs {
		s.Unsubscribe()
	}
	m.subs = nil
}
