package system

import (
	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/pubsub"
)

// TweenFunc advances one tweener by dt
type TweenFunc func(dt float64)

// TweenerFactory builds a stateful tweener bound to an obstacle
type TweenerFactory func(o *entity.Obstacle) TweenFunc

// TweenScheduler ticks registered obstacles once per sub-step.
// Each obstacle runs its tweeners in attachment order; a removed
// obstacle loses its tweeners before it could be ticked again.
type TweenScheduler struct {
	registry *Registry
	sub      pubsub.Subscription
}

// NewTweenScheduler creates a scheduler over the obstacles in registry
func NewTweenScheduler(registry *Registry, bus *event.Bus) *TweenScheduler {
	s := &TweenScheduler{registry: registry}
	s.sub = bus.Removed.Subscribe(s.onRemoved)
	return s
}

// Attach instantiates a tweener for o and subscribes it to o's tick
func (s *TweenScheduler) Attach(o *entity.Obstacle, factory TweenerFactory) pubsub.Subscription {
	fn := factory(o)
	return o.OnTick(fn)
}

func (s *TweenScheduler) onRemoved(e event.RemovedEvent) {
	if o, ok := e.Entity.(*entity.Obstacle); ok {
		o.Detach()
	}
}

// Update ticks every active registered obstacle.
// An obstacle removed earlier in the same pass is skipped.
func (s *TweenScheduler) Update(dt float64) {
	s.registry.Each(entity.CategoryObstacle, func(c entity.Collidable) {
		o, ok := c.(*entity.Obstacle)
		if !ok || !o.Active || !s.registry.Contains(o) {
			return
		}
		o.Update(dt)
	})
}

// Dispose stops listening for removals
func (s *TweenScheduler) Dispose() {
	s.sub.Unsubscribe()
}
