package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/world"
)

const (
	// Contact normals steeper than this count as standing ground
	groundNormalY = 0.5
	// Push-out iterations per body against static geometry
	maxWorldPasses = 4
)

// interactions lists the category pairs checked in the entity-entity phase.
// Ammo never collides with ammo.
var interactions = func() (t [entity.CategoryCount][entity.CategoryCount]bool) {
	pairs := [][2]entity.Category{
		{entity.CategoryCharacter, entity.CategoryCharacter},
		{entity.CategoryCharacter, entity.CategoryObstacle},
		{entity.CategoryCharacter, entity.CategoryAmmo},
		{entity.CategoryCharacter, entity.CategoryItem},
		{entity.CategoryObstacle, entity.CategoryObstacle},
		{entity.CategoryObstacle, entity.CategoryAmmo},
	}
	for _, p := range pairs {
		t[p[0]][p[1]] = true
		t[p[1]][p[0]] = true
	}
	return t
}()

// Interacts reports whether bodies of categories a and b are checked against each other
func Interacts(a, b entity.Category) bool {
	if a < 0 || a >= entity.CategoryCount || b < 0 || b >= entity.CategoryCount {
		return false
	}
	return interactions[a][b]
}

func isSolid(c entity.Category) bool {
	return c == entity.CategoryCharacter || c == entity.CategoryObstacle
}

type pendingOp struct {
	add bool
	e   entity.Collidable
}

// Registry owns every simulated entity, grouped by category.
// It integrates velocity, resolves world and entity-entity contacts,
// and reports contacts on the event bus without knowing gameplay rules.
type Registry struct {
	bus     *event.Bus
	index   world.Index
	gravity float64

	lists [entity.CategoryCount][]entity.Collidable
	byID  [entity.CategoryCount]map[entity.EntityID]entity.Collidable

	updating bool
	pending  []pendingOp
}

// NewRegistry creates an empty registry resolving against index
func NewRegistry(bus *event.Bus, index world.Index, gravity float64) *Registry {
	r := &Registry{
		bus:     bus,
		index:   index,
		gravity: gravity,
	}
	for c := range r.byID {
		r.byID[c] = make(map[entity.EntityID]entity.Collidable)
	}
	return r
}

// SetIndex replaces the static world geometry
func (r *Registry) SetIndex(index world.Index) {
	r.index = index
}

// Add inserts e into its category.
// While Update is running the insertion is queued until the pass completes.
func (r *Registry) Add(e entity.Collidable) error {
	b := e.Base()
	if b.Category < 0 || b.Category >= entity.CategoryCount {
		return &entity.UnknownEntityError{Category: b.Category, Name: b.Name}
	}
	if r.has(b.Category, b.ID) {
		return &entity.DuplicateEntityError{Category: b.Category, ID: b.ID}
	}

	if r.updating {
		r.pending = append(r.pending, pendingOp{add: true, e: e})
		return nil
	}
	r.insert(e)
	return nil
}

// Remove deletes e from its category and publishes RemovedEvent.
// While Update is running the removal is queued until the pass completes.
func (r *Registry) Remove(e entity.Collidable) {
	if r.updating {
		r.pending = append(r.pending, pendingOp{e: e})
		return
	}
	r.delete(e)
}

// Contains reports whether e itself is registered
func (r *Registry) Contains(e entity.Collidable) bool {
	b := e.Base()
	if b.Category < 0 || b.Category >= entity.CategoryCount {
		return false
	}
	got, ok := r.byID[b.Category][b.ID]
	return ok && got == e
}

// Get looks up an entity by category and id
func (r *Registry) Get(c entity.Category, id entity.EntityID) (entity.Collidable, bool) {
	if c < 0 || c >= entity.CategoryCount {
		return nil, false
	}
	e, ok := r.byID[c][id]
	return e, ok
}

// Each calls fn for every entity of category c in insertion order
func (r *Registry) Each(c entity.Category, fn func(entity.Collidable)) {
	if c < 0 || c >= entity.CategoryCount {
		return
	}
	for _, e := range r.lists[c] {
		fn(e)
	}
}

// Len returns the number of entities in category c
func (r *Registry) Len(c entity.Category) int {
	if c < 0 || c >= entity.CategoryCount {
		return 0
	}
	return len(r.lists[c])
}

// Clear removes every entity, publishing RemovedEvent for each
func (r *Registry) Clear() {
	for c := range r.lists {
		list := append([]entity.Collidable(nil), r.lists[c]...)
		for _, e := range list {
			r.Remove(e)
		}
	}
}

// Update advances every active entity by one sub-step:
// gravity, damping and integration, then world contacts, then entity-entity contacts.
// Inactive entities are skipped and left untouched.
func (r *Registry) Update(dt float64, damping DampingTable) {
	r.updating = true

	for c := range r.lists {
		for _, e := range r.lists[c] {
			b := e.Base()
			if !b.Active {
				continue
			}
			r.integrate(b, dt, damping)
			r.resolveWorld(e)
		}
	}
	r.resolveEntities()

	r.updating = false
	r.flush()
}

func (r *Registry) integrate(b *entity.Body, dt float64, damping DampingTable) {
	if b.GravityScale != 0 {
		b.Velocity[1] -= r.gravity * b.GravityScale * dt
	}
	b.Velocity = b.Velocity.Add(b.Velocity.Mul(damping.For(b)))
	b.Collider.Center = b.Collider.Center.Add(b.Velocity.Mul(dt))
}

func (r *Registry) resolveWorld(e entity.Collidable) {
	b := e.Base()
	b.Grounded = false
	if r.index == nil {
		return
	}

	for i := 0; i < maxWorldPasses; i++ {
		contact, ok := r.index.Query(b.Collider)
		if !ok || contact.Depth <= 0 {
			return
		}

		b.Collider.Center = b.Collider.Center.Add(contact.Normal.Mul(contact.Depth))
		if vn := b.Velocity.Dot(contact.Normal); vn < 0 {
			b.Velocity = b.Velocity.Sub(contact.Normal.Mul(vn * (1 + b.Restitution)))
		}
		if contact.Normal[1] > groundNormalY {
			b.Grounded = true
		}

		r.bus.WorldHit.Publish(event.WorldHitEvent{Entity: e, Contact: contact})
		if !b.Active {
			return
		}
	}
}

func (r *Registry) resolveEntities() {
	for ca := entity.Category(0); ca < entity.CategoryCount; ca++ {
		for cb := ca; cb < entity.CategoryCount; cb++ {
			if !interactions[ca][cb] {
				continue
			}
			la, lb := r.lists[ca], r.lists[cb]
			for i, ea := range la {
				start := 0
				if ca == cb {
					start = i + 1
				}
				for _, eb := range lb[start:] {
					a, b := ea.Base(), eb.Base()
					if !a.Active || !b.Active || a == b {
						continue
					}
					if !a.Collider.Intersects(b.Collider) {
						continue
					}
					r.collide(ea, eb)
				}
			}
		}
	}
}

func (r *Registry) collide(ea, eb entity.Collidable) {
	a, b := ea.Base(), eb.Base()

	if isSolid(a.Category) && isSolid(b.Category) {
		separate(a, b)
	}

	r.bus.Collision.Publish(event.CollisionEvent{Entity: ea, Other: eb, OtherCategory: b.Category})
	r.bus.Collision.Publish(event.CollisionEvent{Entity: eb, Other: ea, OtherCategory: a.Category})
}

// separate pushes two overlapping solids apart, split by inverse weight,
// and removes their approaching relative velocity
func separate(a, b *entity.Body) {
	wa, wb := a.InverseWeight(), b.InverseWeight()
	sum := wa + wb
	if sum == 0 {
		return
	}

	d := b.Collider.Center.Sub(a.Collider.Center)
	dist := d.Len()
	n := mgl64.Vec3{0, 1, 0}
	if dist > 0 {
		n = d.Mul(1 / dist)
	}
	overlap := a.Collider.Radius + b.Collider.Radius - dist

	a.Collider.Center = a.Collider.Center.Sub(n.Mul(overlap * wa / sum))
	b.Collider.Center = b.Collider.Center.Add(n.Mul(overlap * wb / sum))

	if rel := b.Velocity.Sub(a.Velocity).Dot(n); rel < 0 {
		a.Velocity = a.Velocity.Add(n.Mul(rel * wa / sum))
		b.Velocity = b.Velocity.Sub(n.Mul(rel * wb / sum))
	}
}

// has reports whether id is taken in category c once the queued operations
// are applied in order
func (r *Registry) has(c entity.Category, id entity.EntityID) bool {
	cur := r.byID[c][id]
	for _, op := range r.pending {
		b := op.e.Base()
		if b.Category != c || b.ID != id {
			continue
		}
		if op.add {
			cur = op.e
		} else if cur == op.e {
			cur = nil
		}
	}
	return cur != nil
}

func (r *Registry) insert(e entity.Collidable) {
	b := e.Base()
	r.byID[b.Category][b.ID] = e
	r.lists[b.Category] = append(r.lists[b.Category], e)
}

func (r *Registry) delete(e entity.Collidable) {
	b := e.Base()
	if !r.Contains(e) {
		return
	}
	delete(r.byID[b.Category], b.ID)

	list := r.lists[b.Category]
	for i, x := range list {
		if x == e {
			r.lists[b.Category] = append(list[:i:i], list[i+1:]...)
			break
		}
	}

	r.bus.Removed.Publish(event.RemovedEvent{Entity: e})
}

func (r *Registry) flush() {
	ops := r.pending
	r.pending = nil
	for _, op := range ops {
		if op.add {
			r.insert(op.e)
		} else {
			r.delete(op.e)
		}
	}
}
