package config

import (
	"errors"
	"math"
)

// Settings is the root config for settings.json
type Settings struct {
	Game     GameSettings    `json:"game"`
	Controls ControlSettings `json:"controls"`
	World    WorldSettings   `json:"world"`
	Logging  LoggingSettings `json:"logging"`
}

type GameSettings struct {
	StepsPerFrame int `json:"stepsPerFrame"`
	Framerate     int `json:"framerate"`
	ResizeDelayMs int `json:"resizeDelayMs"`
	ScreenWidth   int `json:"screenWidth"`
	ScreenHeight  int `json:"screenHeight"`
}

// ControlSettings tunes the input classifier and the POV model.
// Angles suffixed Deg or Limit are in degrees.
type ControlSettings struct {
	LookSpeed            float64 `json:"lookSpeed"`
	StickSpeed           float64 `json:"stickSpeed"`
	RestoreSpeed         float64 `json:"restoreSpeed"`
	RestoreMinAngleDeg   float64 `json:"restoreMinAngleDeg"`
	VerticalAngleLimit   float64 `json:"verticalAngleLimit"`
	HorizontalAngleLimit float64 `json:"horizontalAngleLimit"`
	WheelStepDeg         float64 `json:"wheelStepDeg"`
	WheelRestoreSpeed    float64 `json:"wheelRestoreSpeed"` // rad/s
	InputEpsilon         float64 `json:"inputEpsilon"`
	UrgencyDuration      float64 `json:"urgencyDuration"` // seconds
}

// RestoreMinAngle returns the spring snap angle in radians
func (c ControlSettings) RestoreMinAngle() float64 {
	return deg(c.RestoreMinAngleDeg)
}

// VerticalLimit returns the pitch clamp in radians
func (c ControlSettings) VerticalLimit() float64 {
	return deg(c.VerticalAngleLimit)
}

// HorizontalLimit returns the yaw offset clamp in radians
func (c ControlSettings) HorizontalLimit() float64 {
	return deg(c.HorizontalAngleLimit)
}

// WheelStep returns the per-tick wheel pitch step in radians
func (c ControlSettings) WheelStep() float64 {
	return deg(c.WheelStepDeg)
}

type WorldSettings struct {
	Gravity    float64            `json:"gravity"`
	Resistance ResistanceSettings `json:"resistance"`
}

// ResistanceSettings holds the drag coefficient per damping category
type ResistanceSettings struct {
	Ground float64 `json:"ground"`
	Air    float64 `json:"air"`
	Object float64 `json:"object"`
}

type LoggingSettings struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// DefaultSettings returns the built-in tuning used when a key is missing
func DefaultSettings() *Settings {
	return &Settings{
		Game: GameSettings{
			StepsPerFrame: 3,
			Framerate:     60,
			ResizeDelayMs: 200,
			ScreenWidth:   960,
			ScreenHeight:  540,
		},
		Controls: ControlSettings{
			LookSpeed:            2,
			StickSpeed:           4,
			RestoreSpeed:         3,
			RestoreMinAngleDeg:   0.2,
			VerticalAngleLimit:   80,
			HorizontalAngleLimit: 150,
			WheelStepDeg:         1,
			WheelRestoreSpeed:    1,
			InputEpsilon:         1e-4,
			UrgencyDuration:      0.2,
		},
		World: WorldSettings{
			Gravity: 300,
			Resistance: ResistanceSettings{
				Ground: 10,
				Air:    2,
				Object: 1.5,
			},
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the simulation cannot run with
func (s *Settings) Validate() error {
	var errs []error
	if s.Game.StepsPerFrame < 1 {
		errs = append(errs, errors.New("game.stepsPerFrame must be at least 1"))
	}
	if s.Game.Framerate < 1 {
		errs = append(errs, errors.New("game.framerate must be at least 1"))
	}
	if s.Controls.VerticalAngleLimit <= 0 || s.Controls.VerticalAngleLimit > 90 {
		errs = append(errs, errors.New("controls.verticalAngleLimit must be in (0, 90]"))
	}
	if s.Controls.HorizontalAngleLimit <= 0 || s.Controls.HorizontalAngleLimit > 180 {
		errs = append(errs, errors.New("controls.horizontalAngleLimit must be in (0, 180]"))
	}
	if s.Controls.RestoreMinAngleDeg <= 0 {
		errs = append(errs, errors.New("controls.restoreMinAngleDeg must be positive"))
	}
	if s.Controls.InputEpsilon < 0 {
		errs = append(errs, errors.New("controls.inputEpsilon must not be negative"))
	}
	r := s.World.Resistance
	if r.Ground < 0 || r.Air < 0 || r.Object < 0 {
		errs = append(errs, errors.New("world.resistance values must not be negative"))
	}
	return errors.Join(errs...)
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}
