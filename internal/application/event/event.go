// Package event defines the simulation's typed event bus.
// Each event name has exactly one payload type and one topic.
package event

import (
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/input"
	"github.com/younwookim/fpcore/internal/domain/pubsub"
	"github.com/younwookim/fpcore/internal/domain/world"
)

// InputEvent is published once per classified tick
type InputEvent struct {
	Frame input.ActionFrame
	Look  input.LookInput
}

// POVEvent carries the camera state after a POV update
type POVEvent struct {
	Phi        float64 // Look yaw offset
	Theta      float64 // Look pitch offset
	WheelPitch float64
	Locked     bool

	Pitch float64 // Theta + WheelPitch
	Yaw   float64 // Phi + character facing
}

// FacingEvent is published when a character's yaw changes
type FacingEvent struct {
	Entity entity.EntityID
	Yaw    float64
	Delta  float64
}

// CollisionEvent is delivered to each side of an overlapping entity pair
type CollisionEvent struct {
	Entity        entity.Collidable
	Other         entity.Collidable
	OtherCategory entity.Category
}

// WorldHitEvent is published when an entity is pushed out of static geometry
type WorldHitEvent struct {
	Entity  entity.Collidable
	Contact world.Contact
}

// RemovedEvent is published after an entity leaves the registry
type RemovedEvent struct {
	Entity entity.Collidable
}

// Bus groups the simulation topics
type Bus struct {
	Input     pubsub.Topic[InputEvent]
	POV       pubsub.Topic[POVEvent]
	Facing    pubsub.Topic[FacingEvent]
	Collision pubsub.Topic[CollisionEvent]
	WorldHit  pubsub.Topic[WorldHitEvent]
	Removed   pubsub.Topic[RemovedEvent]
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Clear drops every subscriber on every topic
func (b *Bus) Clear() {
	b.Input.Clear()
	b.POV.Clear()
	b.Facing.Clear()
	b.Collision.Clear()
	b.WorldHit.Clear()
	b.Removed.Clear()
}
