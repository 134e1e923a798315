package system

import (
	"math"

	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

// Damping returns the per-step velocity correction for drag coefficient k.
// The result is in (-1, 0] and is applied as v += v * Damping(k, dt).
func Damping(k, dt float64) float64 {
	return math.Exp(-k*dt) - 1
}

// DampingTable holds the per-category corrections for one sub-step.
// It is computed once per sub-step so every body in a category decays identically.
type DampingTable struct {
	Ground float64
	Air    float64
	Object float64
}

// NewDampingTable computes the corrections for sub-step dt
func NewDampingTable(r config.ResistanceSettings, dt float64) DampingTable {
	return DampingTable{
		Ground: Damping(r.Ground, dt),
		Air:    Damping(r.Air, dt),
		Object: Damping(r.Object, dt),
	}
}

// For selects the correction for a body: object for obstacles,
// ground for grounded bodies, air otherwise
func (t DampingTable) For(b *entity.Body) float64 {
	switch {
	case b.Category == entity.CategoryObstacle:
		return t.Object
	case b.Grounded:
		return t.Ground
	default:
		return t.Air
	}
}
