// Package playing provides the gameplay scene: it feeds device snapshots to
// the simulation, records them on request, and draws a top-down debug view
// with the POV HUD on top.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/fpcore/internal/application/replay"
	"github.com/younwookim/fpcore/internal/application/scene"
	"github.com/younwookim/fpcore/internal/application/simulation"
	"github.com/younwookim/fpcore/internal/application/state"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/infrastructure/device"
)

// AutoFilename asks for a timestamped replay filename
const AutoFilename = "auto"

// pixelsPerUnit is the top-down map scale
const pixelsPerUnit = 2.0

var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorCharacter = color.RGBA{200, 100, 100, 255}
	colorObstacle  = color.RGBA{80, 80, 100, 255}
	colorAmmo      = color.RGBA{255, 215, 0, 255}
	colorItem      = color.RGBA{100, 160, 255, 255}
	colorGauge     = color.RGBA{200, 200, 200, 160}
	colorBeyond    = color.RGBA{255, 80, 80, 255}
	colorSight     = color.RGBA{255, 255, 255, 90}
)

var categoryColors = [entity.CategoryCount]color.RGBA{
	entity.CategoryCharacter: colorCharacter,
	entity.CategoryObstacle:  colorObstacle,
	entity.CategoryAmmo:      colorAmmo,
	entity.CategoryItem:      colorItem,
}

// command is a host action bound to a key, outside the simulated controls
type command int

const (
	cmdNone command = iota
	cmdPause
	cmdRestart
	cmdNextStage
	cmdPreviousStage
	cmdSave
)

var commandKeys = []struct {
	key ebiten.Key
	cmd command
}{
	{ebiten.KeyEscape, cmdPause},
	{ebiten.KeyEnter, cmdRestart},
	{ebiten.KeyN, cmdNextStage},
	{ebiten.KeyP, cmdPreviousStage},
	{ebiten.KeyF5, cmdSave},
}

// Playing is the main gameplay scene
type Playing struct {
	sim    *simulation.Simulation
	source device.Source
	log    *slog.Logger

	screenW int
	screenH int
	paused  bool

	recorder       *replay.Recorder
	recordFilename string
}

// New creates a Playing scene over a simulation that already has a stage.
// If recordPath is not empty, ticked frames are recorded; AutoFilename
// saves under a generated name.
func New(sim *simulation.Simulation, source device.Source, recordPath string, log *slog.Logger) *Playing {
	g := sim.Settings().Game
	p := &Playing{
		sim:            sim,
		source:         source,
		log:            log,
		screenW:        g.ScreenWidth,
		screenH:        g.ScreenHeight,
		recordFilename: recordPath,
	}
	p.startRecording()
	return p
}

func (p *Playing) Update(dt float64) (scene.Scene, error) {
	for _, ck := range commandKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			if err := p.apply(ck.cmd); err != nil {
				p.log.Warn("command failed", "error", err)
			}
		}
	}
	if p.paused {
		return nil, nil
	}

	playing := p.sim.Mode() == state.ModePlay
	snapshot := p.source.Poll()
	if playing && p.recorder != nil {
		p.recorder.RecordFrame(snapshot)
	}
	if err := p.sim.Tick(dt, snapshot); err != nil {
		return nil, err
	}

	if playing && p.sim.Mode() == state.ModeGameOver {
		p.saveRecording()
	}
	return nil, nil
}

func (p *Playing) apply(cmd command) error {
	switch cmd {
	case cmdPause:
		p.paused = !p.paused
		p.log.Info("pause toggled", "paused", p.paused)
	case cmdRestart:
		p.saveRecording()
		if err := p.sim.Restart(); err != nil {
			return err
		}
		p.startRecording()
		p.paused = false
	case cmdNextStage:
		return p.changeStage(p.sim.NextStage)
	case cmdPreviousStage:
		return p.changeStage(p.sim.PreviousStage)
	case cmdSave:
		p.saveRecording()
	}
	return nil
}

// changeStage switches stages. The current recording is closed only once
// the new stage has loaded.
func (p *Playing) changeStage(start func() error) error {
	if err := start(); err != nil {
		return err
	}
	p.saveRecording()
	p.startRecording()
	p.paused = false
	return nil
}

func (p *Playing) startRecording() {
	if p.recordFilename == "" {
		p.recorder = nil
		return
	}
	dt := 1 / float64(p.sim.Settings().Game.Framerate)
	p.recorder = replay.NewRecorder(p.sim.Player().Name, p.sim.StageIndex(), dt)
	p.log.Info("recording enabled", "session", p.recorder.Session(), "stage", p.sim.StageIndex())
}

// saveRecording writes the current recording, if it holds any frames
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == AutoFilename {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "error", err)
		return
	}
	p.log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := camera{center: p.sim.Player().Position(), scale: pixelsPerUnit, w: p.screenW, h: p.screenH}
	player := p.sim.Player()
	for c := entity.Category(0); c < entity.CategoryCount; c++ {
		p.sim.Registry().Each(c, func(e entity.Collidable) {
			b := e.Base()
			if !b.Active || (c == entity.CategoryCharacter && b.ID == player.ID) {
				return
			}
			x, y := cam.project(b.Position())
			ebitenutil.DrawCircle(screen, x, y, math.Max(b.Collider.Radius*cam.scale, 1), categoryColors[c])
		})
	}

	x, y := cam.project(player.Position())
	ebitenutil.DrawCircle(screen, x, y, player.Collider.Radius*cam.scale, colorPlayer)
	fx, fy := cam.project(player.Position().Add(player.Forward().Mul(player.Collider.Radius * 2)))
	ebitenutil.DrawLine(screen, x, y, fx, fy, colorPlayer)

	p.drawIndicators(screen)
	ebitenutil.DebugPrint(screen, statusText(p.sim))

	switch {
	case p.paused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case p.sim.Mode() == state.ModeGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "GAME OVER\n\nPress ENTER to restart")
	}
}

// drawIndicators draws the pitch gauge, yaw marker and wheel sight lines
func (p *Playing) drawIndicators(screen *ebiten.Image) {
	in := p.sim.POV().Indicators()
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2

	gx := cx + in.ViewHalfX - 24
	ebitenutil.DrawLine(screen, gx, cy-in.GaugeHalfY, gx, cy+in.GaugeHalfY, colorGauge)

	sy := cy - in.SightLinesY
	ebitenutil.DrawLine(screen, cx-in.ViewHalfX/4, sy, cx+in.ViewHalfX/4, sy, colorSight)

	if !in.Visible {
		return
	}
	pitchColor := colorGauge
	if in.PitchBeyond {
		pitchColor = colorBeyond
	}
	ebitenutil.DrawRect(screen, gx-6, cy-in.PitchY-2, 12, 4, pitchColor)

	yawColor := colorGauge
	if in.YawBeyond {
		yawColor = colorBeyond
	}
	yx, yy := cx+in.YawX, cy-in.YawY
	ebitenutil.DrawCircle(screen, yx, yy, 4, yawColor)
	ebitenutil.DrawLine(screen, yx, yy, yx+8*math.Sin(in.YawRotation), yy-8*math.Cos(in.YawRotation), yawColor)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

func (p *Playing) Resize(w, h int) {
	p.screenW, p.screenH = w, h
	p.sim.HandleResize(w, h)
}

func (p *Playing) OnEnter() {
	p.log.Debug("entered playing", "stage", p.sim.StageIndex())
}

func (p *Playing) OnExit() {
	p.saveRecording()
}

// camera projects world X/Z onto the screen, centered on a point, -Z up
type camera struct {
	center mgl64.Vec3
	scale  float64
	w, h   int
}

func (c camera) project(v mgl64.Vec3) (float64, float64) {
	return float64(c.w)/2 + (v.X()-c.center.X())*c.scale,
		float64(c.h)/2 + (v.Z()-c.center.Z())*c.scale
}

func statusText(sim *simulation.Simulation) string {
	pl := sim.Player()
	name := ""
	if st := sim.Stage(); st != nil {
		name = st.Name
	}
	ammo := 0
	if pl.Ammo != nil {
		ammo = len(pl.Ammo.Bullets()) - pl.Ammo.InFlight()
	}
	return fmt.Sprintf("stage %s (%d) | %s | hp %d/%d | ammo %d | pov %s\n"+
		"WASD move/turn  arrows look  space jump  J fire  N/P stage  ESC pause",
		name, sim.StageIndex(), sim.Mode(), pl.Health, pl.Stats.MaxHealth, ammo, sim.POV().State().Mode)
}
