package system

import (
	"fmt"
	"sort"

	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

type constructor func(f *Factory, name string) (entity.Collidable, error)

var constructors = map[entity.Category]constructor{
	entity.CategoryCharacter: func(f *Factory, name string) (entity.Collidable, error) { return f.NewCharacter(name) },
	entity.CategoryObstacle:  func(f *Factory, name string) (entity.Collidable, error) { return f.NewObstacle(name) },
	entity.CategoryItem:      func(f *Factory, name string) (entity.Collidable, error) { return f.NewItem(name) },
}

// Factory builds entities from the data tables. Tweener kinds are resolved
// when the factory is created, so a bad table fails at load time.
// Ammo pools are shared: every character using an ammo type fires from the same pool.
type Factory struct {
	data     *config.Data
	tweeners map[string]TweenerFactory
	pools    map[string]*entity.AmmoPool
	nextID   [entity.CategoryCount]entity.EntityID
}

// NewFactory validates the tweener table and returns a factory over data
func NewFactory(data *config.Data) (*Factory, error) {
	f := &Factory{
		data:     data,
		tweeners: make(map[string]TweenerFactory, len(data.Tweeners)),
		pools:    make(map[string]*entity.AmmoPool),
	}
	for name, cfg := range data.Tweeners {
		tf, err := NewTweenerFactory(name, cfg)
		if err != nil {
			return nil, err
		}
		f.tweeners[name] = tf
	}
	return f, nil
}

// Create builds an entity of category c by table name
func (f *Factory) Create(c entity.Category, name string) (entity.Collidable, error) {
	build, ok := constructors[c]
	if !ok {
		return nil, &entity.UnknownEntityError{Category: c, Name: name}
	}
	return build(f, name)
}

// NewCharacter builds a character, arming it with its ammo pool
func (f *Factory) NewCharacter(name string) (*entity.Character, error) {
	cfg, ok := f.data.Characters[name]
	if !ok {
		return nil, &entity.UnknownEntityError{Category: entity.CategoryCharacter, Name: name}
	}

	var pool *entity.AmmoPool
	if cfg.Ammo != "" {
		var err error
		if pool, err = f.AmmoPool(cfg.Ammo); err != nil {
			return nil, fmt.Errorf("character %q: %w", name, err)
		}
	}

	c := entity.NewCharacter(f.allocate(entity.CategoryCharacter, 1), name, entity.CharacterStats{
		Radius:      cfg.Radius,
		Weight:      cfg.Weight,
		MaxHealth:   cfg.MaxHealth,
		Speed:       cfg.Speed,
		AirSpeed:    cfg.AirSpeed,
		TurnSpeed:   cfg.TurnSpeed,
		Sprint:      cfg.Sprint,
		UrgencyMove: cfg.UrgencyMove,
		UrgencyTurn: cfg.UrgencyTurn,
		JumpPower:   cfg.JumpPower,
		Ammo:        cfg.Ammo,
	})
	c.Ammo = pool
	return c, nil
}

// NewObstacle builds an obstacle without tweeners
func (f *Factory) NewObstacle(name string) (*entity.Obstacle, error) {
	cfg, ok := f.data.Obstacles[name]
	if !ok {
		return nil, &entity.UnknownEntityError{Category: entity.CategoryObstacle, Name: name}
	}
	return entity.NewObstacle(f.allocate(entity.CategoryObstacle, 1), name, entity.ObstacleStats{
		Radius:       cfg.Radius,
		Weight:       cfg.Weight,
		RotateSpeed:  cfg.RotateSpeed,
		Restitution:  cfg.Restitution,
		GravityScale: cfg.GravityScale,
	}), nil
}

// NewItem builds a dormant item
func (f *Factory) NewItem(name string) (*entity.Item, error) {
	cfg, ok := f.data.Items[name]
	if !ok {
		return nil, &entity.UnknownEntityError{Category: entity.CategoryItem, Name: name}
	}
	return entity.NewItem(f.allocate(entity.CategoryItem, 1), name, entity.ItemStats{
		Radius: cfg.Radius,
		Heal:   cfg.Heal,
	}), nil
}

// AmmoPool returns the shared pool for an ammo type, creating it on first use
func (f *Factory) AmmoPool(name string) (*entity.AmmoPool, error) {
	if pool, ok := f.pools[name]; ok {
		return pool, nil
	}
	cfg, ok := f.data.Ammo[name]
	if !ok {
		return nil, &entity.UnknownEntityError{Category: entity.CategoryAmmo, Name: name}
	}

	first := f.allocate(entity.CategoryAmmo, cfg.NumAmmo)
	pool := entity.NewAmmoPool(name, entity.AmmoStats{
		Radius:   cfg.Radius,
		Speed:    cfg.Speed,
		Damage:   cfg.Damage,
		NumAmmo:  cfg.NumAmmo,
		Lifetime: float64(cfg.LifetimeMs) / 1000,
		Impulse:  cfg.Impulse,
	}, first)
	f.pools[name] = pool
	return pool, nil
}

// Pools returns every ammo pool created so far, ordered by name
func (f *Factory) Pools() []*entity.AmmoPool {
	names := make([]string, 0, len(f.pools))
	for name := range f.pools {
		names = append(names, name)
	}
	sort.Strings(names)

	pools := make([]*entity.AmmoPool, 0, len(names))
	for _, name := range names {
		pools = append(pools, f.pools[name])
	}
	return pools
}

// Tweener looks up a configured tweener by name
func (f *Factory) Tweener(name string) (TweenerFactory, error) {
	tf, ok := f.tweeners[name]
	if !ok {
		return nil, &entity.UnknownTweenKindError{Name: name}
	}
	return tf, nil
}

// allocate reserves n consecutive ids in category c and returns the first.
// Ids start at 1 so the zero value never names an entity.
func (f *Factory) allocate(c entity.Category, n int) entity.EntityID {
	first := f.nextID[c] + 1
	f.nextID[c] += entity.EntityID(n)
	return first
}
