package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

func TestDamping(t *testing.T) {
	tests := []struct {
		name  string
		k, dt float64
		want  float64
	}{
		{"no resistance", 0, 1, 0},
		{"no time", 10, 0, 0},
		{"unit", 1, 1, -0.6321205588},
		{"ground sub-step", 10, 1.0 / 180, -0.0540405310},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Damping(tt.k, tt.dt), 1e-9)
		})
	}
}

func TestDamping_Range(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.Float64Range(0, 20).Draw(t, "k")
		dt := rapid.Float64Range(0, 1).Draw(t, "dt")

		d := Damping(k, dt)
		if d <= -1 || d > 0 {
			t.Fatalf("Damping(%v, %v) = %v, want (-1, 0]", k, dt, d)
		}
		if (k == 0 || dt == 0) && d != 0 {
			t.Fatalf("Damping(%v, %v) = %v, want 0", k, dt, d)
		}
		if k*dt > 1e-9 && d == 0 {
			t.Fatalf("Damping(%v, %v) = 0 with positive k and dt", k, dt)
		}
	})
}

func TestDamping_StrictlyDecreasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.Float64Range(0, 15).Draw(t, "k")
		dt := rapid.Float64Range(0.001, 0.5).Draw(t, "dt")
		dk := rapid.Float64Range(0.01, 5).Draw(t, "dk")
		ddt := rapid.Float64Range(0.001, 0.5).Draw(t, "ddt")

		if !(Damping(k+dk, dt) < Damping(k, dt)) {
			t.Fatalf("not decreasing in k at k=%v dk=%v dt=%v", k, dk, dt)
		}
		if k > 0.01 && !(Damping(k, dt+ddt) < Damping(k, dt)) {
			t.Fatalf("not decreasing in dt at k=%v dt=%v ddt=%v", k, dt, ddt)
		}
	})
}

func TestDampingTable_For(t *testing.T) {
	table := NewDampingTable(config.ResistanceSettings{Ground: 10, Air: 2, Object: 1}, testDt)

	obstacle := entity.NewObstacle(1, "rock", entity.ObstacleStats{Radius: 1})
	obstacle.Grounded = true
	grounded := &entity.Body{Category: entity.CategoryCharacter, Grounded: true}
	airborne := &entity.Body{Category: entity.CategoryCharacter}

	assert.Equal(t, table.Object, table.For(&obstacle.Body), "obstacles always use object resistance")
	assert.Equal(t, table.Ground, table.For(grounded))
	assert.Equal(t, table.Air, table.For(airborne))
	assert.Less(t, table.Ground, table.Air)
}
