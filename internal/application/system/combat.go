package system

import (
	"log/slog"

	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/pubsub"
)

// CombatSystem applies gameplay rules to contacts reported by the registry:
// bullet hits, item pickups and bullet lifetime
type CombatSystem struct {
	registry *Registry
	log      *slog.Logger

	// Event callbacks
	OnKill   func(c *entity.Character)
	OnPickup func(c *entity.Character, item *entity.Item)

	subs []pubsub.Subscription
}

// NewCombatSystem subscribes combat rules to the bus
func NewCombatSystem(registry *Registry, bus *event.Bus, log *slog.Logger) *CombatSystem {
	s := &CombatSystem{
		registry: registry,
		log:      log,
	}
	s.subs = append(s.subs,
		bus.Collision.Subscribe(s.onCollision),
		bus.WorldHit.Subscribe(s.onWorldHit),
	)
	return s
}

func (s *CombatSystem) onCollision(e event.CollisionEvent) {
	switch self := e.Entity.(type) {
	case *entity.Bullet:
		s.bulletHit(self, e.Other)
	case *entity.Character:
		if item, ok := e.Other.(*entity.Item); ok {
			s.pickup(self, item)
		}
	}
}

func (s *CombatSystem) bulletHit(b *entity.Bullet, other entity.Collidable) {
	if !b.Active {
		return
	}

	switch target := other.(type) {
	case *entity.Character:
		if target.ID == b.Owner || !target.Alive {
			return
		}
		b.Spend()
		if target.TakeDamage(b.Damage) {
			s.log.Info("character killed", "name", target.Name, "id", target.ID)
			if s.OnKill != nil {
				s.OnKill(target)
			}
		}
	case *entity.Obstacle:
		dir := b.Velocity
		b.Spend()
		if dir.Len() == 0 {
			return
		}
		impulse := dir.Normalize().Mul(b.Impulse * target.InverseWeight())
		target.Velocity = target.Velocity.Add(impulse)
	}
}

func (s *CombatSystem) pickup(c *entity.Character, item *entity.Item) {
	if !item.Alive || !c.Alive {
		return
	}
	item.Collect()
	c.Heal(item.Stats.Heal)
	s.log.Debug("item collected", "item", item.Name, "by", c.Name, "health", c.Health)
	if s.OnPickup != nil {
		s.OnPickup(c, item)
	}
}

func (s *CombatSystem) onWorldHit(e event.WorldHitEvent) {
	if b, ok := e.Entity.(*entity.Bullet); ok {
		b.Spend()
	}
}

// Update ages every bullet in flight
func (s *CombatSystem) Update(dt float64) {
	s.registry.Each(entity.CategoryAmmo, func(c entity.Collidable) {
		if b, ok := c.(*entity.Bullet); ok {
			b.Tick(dt)
		}
	})
}

// Dispose unsubscribes from the bus
func (s *CombatSystem) Dispose() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
}
