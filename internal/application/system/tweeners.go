package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

// TweenKind names a built-in tweener
type TweenKind string

const (
	TweenShift     TweenKind = "shift"     // Constant drift of the center
	TweenOscillate TweenKind = "oscillate" // Sine sway along an axis
	TweenOrbit     TweenKind = "orbit"     // Circle in the XZ plane
	TweenSpin      TweenKind = "spin"      // Extra yaw rotation
	TweenPush      TweenKind = "push"      // Periodic velocity impulse
)

type tweenBuilder func(cfg config.TweenerConfig) TweenerFactory

var tweenBuilders = map[TweenKind]tweenBuilder{
	TweenShift:     shiftTweener,
	TweenOscillate: oscillateTweener,
	TweenOrbit:     orbitTweener,
	TweenSpin:      spinTweener,
	TweenPush:      pushTweener,
}

// NewTweenerFactory resolves a configured tweener to its constructor
func NewTweenerFactory(name string, cfg config.TweenerConfig) (TweenerFactory, error) {
	build, ok := tweenBuilders[TweenKind(cfg.Kind)]
	if !ok {
		return nil, &entity.UnknownTweenKindError{Name: name, Kind: cfg.Kind}
	}
	return build(cfg), nil
}

func shiftTweener(cfg config.TweenerConfig) TweenerFactory {
	return func(o *entity.Obstacle) TweenFunc {
		return func(dt float64) {
			o.Collider.Center = o.Collider.Center.Add(cfg.Vector.Mul(dt))
		}
	}
}

// oscillateTweener applies the change of a sine offset each tick, never an absolute position
func oscillateTweener(cfg config.TweenerConfig) TweenerFactory {
	axis := cfg.Vector
	if axis.Len() > 0 {
		axis = axis.Normalize()
	}
	return func(o *entity.Obstacle) TweenFunc {
		var elapsed float64
		prev := mgl64.Vec3{}
		return func(dt float64) {
			if cfg.Period <= 0 {
				return
			}
			elapsed += dt
			offset := axis.Mul(cfg.Amplitude * math.Sin(2*math.Pi*elapsed/cfg.Period))
			o.Collider.Center = o.Collider.Center.Add(offset.Sub(prev))
			prev = offset
		}
	}
}

func orbitTweener(cfg config.TweenerConfig) TweenerFactory {
	return func(o *entity.Obstacle) TweenFunc {
		var elapsed float64
		prev := mgl64.Vec3{cfg.Radius, 0, 0}
		return func(dt float64) {
			if cfg.Period <= 0 {
				return
			}
			elapsed += dt
			a := 2 * math.Pi * elapsed / cfg.Period
			offset := mgl64.Vec3{cfg.Radius * math.Cos(a), 0, cfg.Radius * math.Sin(a)}
			o.Collider.Center = o.Collider.Center.Add(offset.Sub(prev))
			prev = offset
		}
	}
}

func spinTweener(cfg config.TweenerConfig) TweenerFactory {
	return func(o *entity.Obstacle) TweenFunc {
		return func(dt float64) {
			o.Rotation[1] += cfg.Speed * dt
		}
	}
}

func pushTweener(cfg config.TweenerConfig) TweenerFactory {
	return func(o *entity.Obstacle) TweenFunc {
		var timer float64
		return func(dt float64) {
			if cfg.Interval <= 0 {
				return
			}
			timer += dt
			for timer >= cfg.Interval {
				timer -= cfg.Interval
				o.Velocity = o.Velocity.Add(cfg.Vector)
			}
		}
	}
}
