package world

//go:generate go tool mockgen -destination=./mocks/index_mock.go -package=mocks . Index

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/domain/entity"
)

// Contact is the result of a sphere overlapping static geometry.
// Moving the sphere by Normal*Depth separates it.
type Contact struct {
	Normal mgl64.Vec3 // Unit vector pointing out of the surface
	Depth  float64
}

// Index answers sphere queries against static world geometry
type Index interface {
	Query(s entity.Sphere) (Contact, bool)
}

// Plane is an infinite solid half-space below the surface p·Normal = Offset
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// Ground returns a horizontal plane at height y
func Ground(y float64) Plane {
	return Plane{Normal: mgl64.Vec3{0, 1, 0}, Offset: y}
}

func (p Plane) Query(s entity.Sphere) (Contact, bool) {
	d := s.Center.Dot(p.Normal) - p.Offset
	if d >= s.Radius {
		return Contact{}, false
	}
	return Contact{Normal: p.Normal, Depth: s.Radius - d}, true
}

// Box is a solid axis-aligned block
type Box struct {
	Min, Max mgl64.Vec3
}

func (b Box) Query(s entity.Sphere) (Contact, bool) {
	var closest mgl64.Vec3
	for i := 0; i < 3; i++ {
		closest[i] = mgl64.Clamp(s.Center[i], b.Min[i], b.Max[i])
	}

	diff := s.Center.Sub(closest)
	dist := diff.Len()
	if dist >= s.Radius {
		return Contact{}, false
	}
	if dist > 0 {
		return Contact{Normal: diff.Mul(1 / dist), Depth: s.Radius - dist}, true
	}

	// Center inside the box: leave through the nearest face
	best := Contact{Depth: -1}
	for i := 0; i < 3; i++ {
		if d := s.Center[i] - b.Min[i]; best.Depth < 0 || d < best.Depth {
			best.Depth = d
			best.Normal = mgl64.Vec3{}
			best.Normal[i] = -1
		}
		if d := b.Max[i] - s.Center[i]; d < best.Depth {
			best.Depth = d
			best.Normal = mgl64.Vec3{}
			best.Normal[i] = 1
		}
	}
	best.Depth += s.Radius
	return best, true
}

// Static combines several indexes and reports the deepest contact
type Static struct {
	parts []Index
}

// NewStatic creates a combined index
func NewStatic(parts ...Index) *Static {
	return &Static{parts: parts}
}

// Add appends geometry
func (s *Static) Add(parts ...Index) {
	s.parts = append(s.parts, parts...)
}

// Len returns the number of geometry parts
func (s *Static) Len() int {
	return len(s.parts)
}

func (s *Static) Query(sphere entity.Sphere) (Contact, bool) {
	var best Contact
	found := false
	for _, p := range s.parts {
		c, ok := p.Query(sphere)
		if !ok {
			continue
		}
		if !found || c.Depth > best.Depth {
			best = c
			found = true
		}
	}
	return best, found
}
