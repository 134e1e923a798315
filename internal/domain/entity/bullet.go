package entity

import "github.com/go-gl/mathgl/mgl64"

// AmmoStats is the stat block of an ammo data-table entry
type AmmoStats struct {
	Radius   float64
	Speed    float64 // units/s
	Damage   int
	NumAmmo  int
	Lifetime float64 // seconds
	Impulse  float64 // Velocity handed to obstacles on hit, per unit weight
}

// Bullet is a pooled ammo round. Spent rounds stay registered but inactive.
type Bullet struct {
	Body
	Damage    int
	Impulse   float64
	Owner     EntityID
	Remaining float64 // Seconds left before the round is spent
}

// Tick ages the bullet and deactivates it when its lifetime runs out.
// Returns true when the bullet expired on this call.
func (b *Bullet) Tick(dt float64) bool {
	if !b.Active {
		return false
	}
	b.Remaining -= dt
	if b.Remaining <= 0 {
		b.Remaining = 0
		b.Active = false
		return true
	}
	return false
}

// Spend deactivates the bullet immediately
func (b *Bullet) Spend() {
	b.Active = false
	b.Remaining = 0
	b.Velocity = mgl64.Vec3{}
}

// AmmoPool is a fixed set of bullets for one ammo type, reused round-robin
type AmmoPool struct {
	Name  string
	Stats AmmoStats

	bullets []*Bullet
	next    int
}

// NewAmmoPool preallocates stats.NumAmmo inactive bullets with ids starting at firstID
func NewAmmoPool(name string, stats AmmoStats, firstID EntityID) *AmmoPool {
	pool := &AmmoPool{
		Name:    name,
		Stats:   stats,
		bullets: make([]*Bullet, stats.NumAmmo),
	}
	for i := range pool.bullets {
		pool.bullets[i] = &Bullet{
			Body: Body{
				ID:       firstID + EntityID(i),
				Name:     name,
				Category: CategoryAmmo,
				Collider: Sphere{Radius: stats.Radius},
				Alive:    true,
			},
			Damage:  stats.Damage,
			Impulse: stats.Impulse,
		}
	}
	return pool
}

// Bullets returns every bullet in the pool
func (p *AmmoPool) Bullets() []*Bullet {
	return p.bullets
}

// Fire launches the next bullet from origin along dir.
// When every round is in flight the oldest one is recycled.
func (p *AmmoPool) Fire(origin, dir mgl64.Vec3, owner EntityID) (*Bullet, bool) {
	if len(p.bullets) == 0 {
		return nil, false
	}
	if dir.Len() == 0 {
		return nil, false
	}

	b := p.bullets[p.next]
	p.next = (p.next + 1) % len(p.bullets)

	b.Collider.Center = origin
	b.Velocity = dir.Normalize().Mul(p.Stats.Speed)
	b.Owner = owner
	b.Remaining = p.Stats.Lifetime
	b.Active = true
	return b, true
}

// InFlight returns the number of active bullets
func (p *AmmoPool) InFlight() int {
	n := 0
	for _, b := range p.bullets {
		if b.Active {
			n++
		}
	}
	return n
}

// SetActive toggles every bullet in the pool
func (p *AmmoPool) SetActive(active bool) {
	for _, b := range p.bullets {
		b.Active = active
	}
}
