package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/domain/pubsub"
)

// ObstacleStats is the stat block of an obstacle data-table entry
type ObstacleStats struct {
	Radius       float64
	Weight       float64
	RotateSpeed  float64 // rad/s around Y
	Restitution  float64
	GravityScale float64
}

// Obstacle is a non-player body animated by attached tweeners.
// Tweeners subscribe to the tick topic and run in attachment order.
type Obstacle struct {
	Body
	RotateSpeed float64

	Origin  mgl64.Vec3 // Placement position
	Elapsed float64    // Seconds since placement

	ticks pubsub.Topic[float64]
}

// NewObstacle creates an active obstacle at the origin
func NewObstacle(id EntityID, name string, stats ObstacleStats) *Obstacle {
	return &Obstacle{
		Body: Body{
			ID:           id,
			Name:         name,
			Category:     CategoryObstacle,
			Collider:     Sphere{Radius: stats.Radius},
			Active:       true,
			Alive:        true,
			GravityScale: stats.GravityScale,
			Restitution:  stats.Restitution,
			Weight:       stats.Weight,
		},
		RotateSpeed: stats.RotateSpeed,
	}
}

// Place sets both the collider center and the tween origin
func (o *Obstacle) Place(p mgl64.Vec3) {
	o.Origin = p
	o.Collider.Center = p
	o.Elapsed = 0
}

// OnTick subscribes fn to the obstacle's per-tick event
func (o *Obstacle) OnTick(fn func(dt float64)) pubsub.Subscription {
	return o.ticks.Subscribe(fn)
}

// Tweeners returns the number of attached tick handlers
func (o *Obstacle) Tweeners() int {
	return o.ticks.Len()
}

// Update spins the obstacle and publishes one tick to its tweeners
func (o *Obstacle) Update(dt float64) {
	o.Elapsed += dt
	o.Rotation[1] += o.RotateSpeed * dt
	o.ticks.Publish(dt)
}

// Detach drops every tweener
func (o *Obstacle) Detach() {
	o.ticks.Clear()
}
