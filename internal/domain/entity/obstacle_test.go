package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestObstacle_Place(t *testing.T) {
	o := NewObstacle(1, "rock", ObstacleStats{Radius: 2, Weight: 3})
	o.Elapsed = 4
	o.Place(mgl64.Vec3{1, 2, 3})

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, o.Origin)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, o.Position())
	assert.Zero(t, o.Elapsed)
	assert.Equal(t, CategoryObstacle, o.Category)
}

func TestObstacle_UpdateRunsTweenersInOrder(t *testing.T) {
	o := NewObstacle(1, "rock", ObstacleStats{Radius: 2, RotateSpeed: 2})

	var order []string
	o.OnTick(func(dt float64) { order = append(order, "first") })
	o.OnTick(func(dt float64) { order = append(order, "second") })
	assert.Equal(t, 2, o.Tweeners())

	o.Update(0.5)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.InDelta(t, 1.0, o.Rotation[1], 1e-12)
	assert.InDelta(t, 0.5, o.Elapsed, 1e-12)
}

func TestObstacle_Detach(t *testing.T) {
	o := NewObstacle(1, "rock", ObstacleStats{Radius: 2})

	calls := 0
	sub := o.OnTick(func(dt float64) { calls++ })
	o.OnTick(func(dt float64) { calls++ })

	sub.Unsubscribe()
	o.Update(0.1)
	assert.Equal(t, 1, calls)

	o.Detach()
	o.Update(0.1)
	assert.Equal(t, 1, calls)
	assert.Zero(t, o.Tweeners())
}
