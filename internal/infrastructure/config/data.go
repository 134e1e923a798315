package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/domain/entity"
)

// Data is the root of data.yaml: immutable stat tables and stage layouts
type Data struct {
	Characters   map[string]CharacterConfig `yaml:"characters"`
	Obstacles    map[string]ObstacleConfig  `yaml:"obstacles"`
	Ammo         map[string]AmmoConfig      `yaml:"ammo"`
	Items        map[string]ItemConfig      `yaml:"items"`
	Tweeners     map[string]TweenerConfig   `yaml:"tweeners"`
	Stages       map[string]StageConfig     `yaml:"stages"`
	Compositions map[string][]string        `yaml:"compositions"`
}

type CharacterConfig struct {
	Radius      float64 `yaml:"radius"`
	Weight      float64 `yaml:"weight"`
	MaxHealth   int     `yaml:"maxHealth"`
	Speed       float64 `yaml:"speed"`
	AirSpeed    float64 `yaml:"airSpeed"`
	TurnSpeed   float64 `yaml:"turnSpeed"`
	Sprint      float64 `yaml:"sprint"`
	UrgencyMove float64 `yaml:"urgencyMove"`
	UrgencyTurn float64 `yaml:"urgencyTurn"`
	JumpPower   float64 `yaml:"jumpPower"`
	Ammo        string  `yaml:"ammo,omitempty"`
}

type ObstacleConfig struct {
	Radius       float64 `yaml:"radius"`
	Weight       float64 `yaml:"weight"`
	RotateSpeed  float64 `yaml:"rotateSpeed"`
	Restitution  float64 `yaml:"restitution"`
	GravityScale float64 `yaml:"gravityScale"`
}

type AmmoConfig struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	Damage     int     `yaml:"damage"`
	NumAmmo    int     `yaml:"numAmmo"`
	LifetimeMs int     `yaml:"lifetimeMs"`
	Impulse    float64 `yaml:"impulse"`
}

type ItemConfig struct {
	Radius float64 `yaml:"radius"`
	Heal   int     `yaml:"heal"`
}

// TweenerConfig parameterizes one tweener kind.
// Vector is the shift velocity, oscillation axis or push impulse depending on Kind.
type TweenerConfig struct {
	Kind      string     `yaml:"kind"`
	Vector    mgl64.Vec3 `yaml:"vector,omitempty"`
	Amplitude float64    `yaml:"amplitude,omitempty"`
	Period    float64    `yaml:"period,omitempty"`
	Radius    float64    `yaml:"radius,omitempty"`
	Speed     float64    `yaml:"speed,omitempty"`
	Interval  float64    `yaml:"interval,omitempty"`
}

type StageConfig struct {
	Ground      float64           `yaml:"ground"`
	CheckPoints []mgl64.Vec3      `yaml:"checkPoints"`
	Blocks      []BlockConfig     `yaml:"blocks"`
	Obstacles   []PlacementConfig `yaml:"obstacles"`
	Items       []PlacementConfig `yaml:"items"`
	Characters  []PlacementConfig `yaml:"characters"`
}

type BlockConfig struct {
	Min mgl64.Vec3 `yaml:"min"`
	Max mgl64.Vec3 `yaml:"max"`
}

// PlacementConfig puts a named table entry at a position
type PlacementConfig struct {
	Name     string     `yaml:"name"`
	Position mgl64.Vec3 `yaml:"position"`
	Tweeners []string   `yaml:"tweeners,omitempty"`
}

// StageOrder returns the stage play order from the "stage" composition
func (d *Data) StageOrder() []string {
	return d.Compositions["stage"]
}

// Validate checks every cross reference so later lookups cannot miss
func (d *Data) Validate() error {
	var errs []error

	for name, c := range d.Characters {
		if c.Radius <= 0 {
			errs = append(errs, fmt.Errorf("character %q: radius must be positive", name))
		}
		if c.Ammo != "" {
			if _, ok := d.Ammo[c.Ammo]; !ok {
				errs = append(errs, fmt.Errorf("character %q: %w", name, &entity.UnknownEntityError{Category: entity.CategoryAmmo, Name: c.Ammo}))
			}
		}
	}
	for name, o := range d.Obstacles {
		if o.Radius <= 0 {
			errs = append(errs, fmt.Errorf("obstacle %q: radius must be positive", name))
		}
	}
	for name, a := range d.Ammo {
		if a.NumAmmo < 0 || a.LifetimeMs < 0 {
			errs = append(errs, fmt.Errorf("ammo %q: numAmmo and lifetimeMs must not be negative", name))
		}
	}

	for name, s := range d.Stages {
		if len(s.CheckPoints) == 0 {
			errs = append(errs, fmt.Errorf("stage %q: at least one check point is required", name))
		}
		for _, p := range s.Obstacles {
			if _, ok := d.Obstacles[p.Name]; !ok {
				errs = append(errs, fmt.Errorf("stage %q: %w", name, &entity.UnknownEntityError{Category: entity.CategoryObstacle, Name: p.Name}))
			}
			for _, tw := range p.Tweeners {
				if _, ok := d.Tweeners[tw]; !ok {
					errs = append(errs, fmt.Errorf("stage %q: %w", name, &entity.UnknownTweenKindError{Name: tw}))
				}
			}
		}
		for _, p := range s.Items {
			if _, ok := d.Items[p.Name]; !ok {
				errs = append(errs, fmt.Errorf("stage %q: %w", name, &entity.UnknownEntityError{Category: entity.CategoryItem, Name: p.Name}))
			}
		}
		for _, p := range s.Characters {
			if _, ok := d.Characters[p.Name]; !ok {
				errs = append(errs, fmt.Errorf("stage %q: %w", name, &entity.UnknownEntityError{Category: entity.CategoryCharacter, Name: p.Name}))
			}
		}
	}

	for i, name := range d.StageOrder() {
		if _, ok := d.Stages[name]; !ok {
			errs = append(errs, fmt.Errorf("composition stage[%d]: %w", i, &entity.UnknownStageError{Name: name}))
		}
	}

	return errors.Join(errs...)
}
