package entity

import "github.com/go-gl/mathgl/mgl64"

// EntityID identifies an entity within its category
type EntityID uint32

// Category groups entities for broad-phase collision and lookup
type Category int

const (
	CategoryCharacter Category = iota
	CategoryObstacle
	CategoryAmmo
	CategoryItem

	CategoryCount
)

// String returns the data-table name of the category
func (c Category) String() string {
	switch c {
	case CategoryCharacter:
		return "character"
	case CategoryObstacle:
		return "obstacle"
	case CategoryAmmo:
		return "ammo"
	case CategoryItem:
		return "item"
	default:
		return "unknown"
	}
}

// Sphere is the collision volume of every entity.
// Center is the authoritative world position, not the render transform.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Intersects reports whether two spheres overlap
func (s Sphere) Intersects(o Sphere) bool {
	r := s.Radius + o.Radius
	d := s.Center.Sub(o.Center)
	return d.Dot(d) < r*r
}
