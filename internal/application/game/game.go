// Package game adapts a Scene stack to ebiten.Game.
package game

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/fpcore/internal/application/scene"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
	"github.com/younwookim/fpcore/internal/infrastructure/logger"
)

// Game implements ebiten.Game and manages Scene transitions.
// The logical screen follows the window; a new size reaches the scene
// only after it has been stable for the configured resize delay.
type Game struct {
	current scene.Scene
	dt      float64
	log     *slog.Logger

	resize debouncer
	now    func() time.Time
}

// New creates a Game and enters the initial scene
func New(initial scene.Scene, cfg config.GameSettings, log *slog.Logger) *Game {
	if log == nil {
		log = logger.L()
	}
	g := &Game{
		current: initial,
		dt:      1 / float64(cfg.Framerate),
		log:     log,
		resize:  debouncer{delay: time.Duration(cfg.ResizeDelayMs) * time.Millisecond},
		now:     time.Now,
	}
	g.resize.observe(cfg.ScreenWidth, cfg.ScreenHeight, time.Time{})
	g.current.OnEnter()
	return g
}

func (g *Game) Update() error {
	if w, h, ok := g.resize.settled(g.now()); ok {
		g.log.Debug("viewport resized", "width", w, "height", h)
		g.current.Resize(w, h)
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		if w, h, ok := g.resize.size(); ok {
			g.current.Resize(w, h)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize.observe(outsideWidth, outsideHeight, g.now())
	return outsideWidth, outsideHeight
}

// SetDT overrides the per-update frame time
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// debouncer reports a size once no new size has been observed for delay
type debouncer struct {
	delay time.Duration

	w, h    int
	changed time.Time
	pending bool
	known   bool
}

func (d *debouncer) observe(w, h int, now time.Time) {
	if d.known && w == d.w && h == d.h {
		return
	}
	d.w, d.h = w, h
	d.changed = now
	d.pending = true
	d.known = true
}

func (d *debouncer) settled(now time.Time) (int, int, bool) {
	if !d.pending || now.Sub(d.changed) < d.delay {
		return 0, 0, false
	}
	d.pending = false
	return d.w, d.h, true
}

func (d *debouncer) size() (int, int, bool) {
	return d.w, d.h, d.known
}
