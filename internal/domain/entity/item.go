package entity

import "github.com/go-gl/mathgl/mgl64"

// ItemStats is the stat block of an item data-table entry
type ItemStats struct {
	Radius float64
	Heal   int
}

// Item is a pickup. It is created neither alive nor active and waits to be spawned.
type Item struct {
	Body
	Stats ItemStats
}

// NewItem creates a dormant item
func NewItem(id EntityID, name string, stats ItemStats) *Item {
	return &Item{
		Body: Body{
			ID:       id,
			Name:     name,
			Category: CategoryItem,
			Collider: Sphere{Radius: stats.Radius},
		},
		Stats: stats,
	}
}

// Spawn places the item and brings it into the simulation
func (i *Item) Spawn(p mgl64.Vec3) {
	i.Collider.Center = p
	i.Alive = true
	i.Active = true
}

// Collect removes the item from play while keeping it registered
func (i *Item) Collect() {
	i.Alive = false
	i.Active = false
}
