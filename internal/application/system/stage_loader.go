package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/world"
)

// Placement pairs a placed obstacle with the tweeners to attach to it
type Placement struct {
	Obstacle *entity.Obstacle
	Tweeners []TweenerFactory
}

// Stage is a fully constructed stage, not yet registered anywhere
type Stage struct {
	Name        string
	Index       int
	CheckPoints []mgl64.Vec3
	World       *world.Static

	Obstacles  []Placement
	Items      []*entity.Item
	Characters []*entity.Character
}

// CheckPoint returns check point i, clamped to the available range
func (s *Stage) CheckPoint(i int) mgl64.Vec3 {
	if len(s.CheckPoints) == 0 {
		return mgl64.Vec3{}
	}
	i = max(0, min(i, len(s.CheckPoints)-1))
	return s.CheckPoints[i]
}

// LoadStage builds the stage at position index of the "stage" composition.
// Nothing is registered, so a failure leaves the simulation untouched.
func LoadStage(f *Factory, index int) (*Stage, error) {
	order := f.data.StageOrder()
	if index < 0 || index >= len(order) {
		return nil, &entity.UnknownStageError{Index: index}
	}
	name := order[index]
	cfg, ok := f.data.Stages[name]
	if !ok {
		return nil, &entity.UnknownStageError{Name: name, Index: index}
	}

	stage := &Stage{
		Name:        name,
		Index:       index,
		CheckPoints: append([]mgl64.Vec3(nil), cfg.CheckPoints...),
		World:       world.NewStatic(world.Ground(cfg.Ground)),
	}
	for _, b := range cfg.Blocks {
		stage.World.Add(world.Box{Min: b.Min, Max: b.Max})
	}

	for _, p := range cfg.Obstacles {
		o, err := f.NewObstacle(p.Name)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", name, err)
		}
		o.Place(p.Position)

		placement := Placement{Obstacle: o}
		for _, tn := range p.Tweeners {
			tf, err := f.Tweener(tn)
			if err != nil {
				return nil, fmt.Errorf("stage %q obstacle %q: %w", name, p.Name, err)
			}
			placement.Tweeners = append(placement.Tweeners, tf)
		}
		stage.Obstacles = append(stage.Obstacles, placement)
	}

	for _, p := range cfg.Items {
		item, err := f.NewItem(p.Name)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", name, err)
		}
		item.Spawn(p.Position)
		stage.Items = append(stage.Items, item)
	}

	for _, p := range cfg.Characters {
		c, err := f.NewCharacter(p.Name)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", name, err)
		}
		c.SetPosition(p.Position)
		stage.Characters = append(stage.Characters, c)
	}

	return stage, nil
}
