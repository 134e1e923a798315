package entity

import "github.com/go-gl/mathgl/mgl64"

// Body is the state shared by every simulated entity.
// Velocity is in units per second and is written only by the owning
// controller and the collision registry.
type Body struct {
	ID       EntityID
	Name     string
	Category Category

	Collider Sphere
	Velocity mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles, render only

	// Active bodies take part in collision and update.
	// Alive bodies are logically present in the simulation.
	Active bool
	Alive  bool

	Grounded     bool    // Set by the last world collision pass
	GravityScale float64 // 0 = ignores gravity
	Restitution  float64 // Fraction of normal velocity kept on world contact
	Weight       float64 // Used to split entity-entity separation
}

// Collidable is implemented by every entity type the registry owns
type Collidable interface {
	Base() *Body
}

// Base returns the body itself
func (b *Body) Base() *Body {
	return b
}

// Position returns the collider center
func (b *Body) Position() mgl64.Vec3 {
	return b.Collider.Center
}

// SetPosition moves the collider center. Used only for placement, never by motion.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.Collider.Center = p
}

// SetActive toggles participation in collision and update
func (b *Body) SetActive(active bool) {
	b.Active = active
}

// InverseWeight returns 1/weight, or 0 for immovable (weight <= 0) bodies
func (b *Body) InverseWeight() float64 {
	if b.Weight <= 0 {
		return 0
	}
	return 1 / b.Weight
}
