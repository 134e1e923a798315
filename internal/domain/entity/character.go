package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CharacterStats is the stat block of a character data-table entry
type CharacterStats struct {
	Radius      float64
	Weight      float64
	MaxHealth   int
	Speed       float64 // Ground acceleration (units/s²)
	AirSpeed    float64 // Airborne acceleration (units/s²)
	TurnSpeed   float64 // rad/s
	Sprint      float64 // Multiplier applied to Speed while dashing
	UrgencyMove float64 // Dodge impulse (units/s)
	UrgencyTurn float64 // Quick-turn angle (rad)
	JumpPower   float64 // Upward velocity set on jump (units/s)
	Ammo        string  // Ammo pool name, empty = unarmed
}

// Character is a player or NPC body with a facing direction
type Character struct {
	Body
	Stats CharacterStats

	Facing float64 // Yaw in radians, 0 looks down -Z
	Health int

	Ammo *AmmoPool
}

// NewCharacter creates an active, alive character at the origin
func NewCharacter(id EntityID, name string, stats CharacterStats) *Character {
	return &Character{
		Body: Body{
			ID:           id,
			Name:         name,
			Category:     CategoryCharacter,
			Collider:     Sphere{Radius: stats.Radius},
			Active:       true,
			Alive:        true,
			GravityScale: 1,
			Weight:       stats.Weight,
		},
		Stats:  stats,
		Health: stats.MaxHealth,
	}
}

// Forward returns the horizontal unit vector the character faces
func (c *Character) Forward() mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(c.Facing), 0, -math.Cos(c.Facing)}
}

// Side returns the horizontal unit vector to the character's right
func (c *Character) Side() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(c.Facing), 0, -math.Sin(c.Facing)}
}

// TakeDamage reduces health and returns true if the character died
func (c *Character) TakeDamage(damage int) bool {
	c.Health -= damage
	if c.Health <= 0 {
		c.Health = 0
		c.Alive = false
		return true
	}
	return false
}

// Heal restores health up to the maximum
func (c *Character) Heal(amount int) {
	if !c.Alive {
		return
	}
	c.Health = min(c.Health+amount, c.Stats.MaxHealth)
}

// IsAlive returns true if the character has health left
func (c *Character) IsAlive() bool {
	return c.Alive && c.Health > 0
}
