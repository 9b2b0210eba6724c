// Package world holds the grid-stepping entities of one board and advances
// them once per scheduler tick. It contains no terminal code; the platform
// feeds it held keys and elapsed time and renders it into a core.Screen.
package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/gridstep/internal/config"
	"github.com/vovakirdan/gridstep/internal/core"
	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/input"
	"github.com/vovakirdan/gridstep/internal/movement"
)

var entityColors = []core.Color{core.ColorCyan, core.ColorYellow, core.ColorGreen, core.ColorMagenta}

// World is a board of entities sharing one input dispatcher.
type World struct {
	board    core.Rect
	source   *input.Dispatcher
	entities []*Entity
	byName   map[string]*Entity
	ticks    uint64
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Events    []direction.Direction // Direction events emitted this tick
	Started   []string              // Entities that began a move
	Dropped   []string              // Entities that ignored events because they were moving
	Completed []string              // Entities that finished a move
}

// New creates a world from a validated configuration and attaches every
// entity's stepper to the world's dispatcher.
func New(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		board:  core.NewRect(0, 0, cfg.Board.Width, cfg.Board.Height),
		source: input.NewDispatcher(),
		byName: make(map[string]*Entity, len(cfg.Entities)),
	}

	for i, ec := range cfg.Entities {
		e := &Entity{
			Name:  ec.Name,
			Color: entityColors[i%len(entityColors)],
		}
		pos := mgl64.Vec3{float64(ec.X), float64(ec.Y), 0}
		e.stepper = movement.NewStepper(cfg.Movement, e, pos, ec.Facing)
		e.stepper.Attach(w.source)

		w.entities = append(w.entities, e)
		w.byName[ec.Name] = e
	}

	return w, nil
}

// Close detaches every entity from the dispatcher.
func (w *World) Close() {
	for _, e := range w.entities {
		e.stepper.Detach()
	}
}

// Board returns the board rectangle in cells.
func (w *World) Board() core.Rect { return w.board }

// Entities returns the entities in configuration order.
func (w *World) Entities() []*Entity { return w.entities }

// Entity returns the entity with the given name.
func (w *World) Entity(name string) (*Entity, bool) {
	e, ok := w.byName[name]
	return e, ok
}

// Ticks returns the number of ticks stepped so far.
func (w *World) Ticks() uint64 { return w.ticks }

// Dispatcher returns the input source the entities listen to.
func (w *World) Dispatcher() *input.Dispatcher { return w.source }

// SetFacing changes an entity's facing direction and re-syncs its
// orientation immediately, as an edit in a property inspector would.
func (w *World) SetFacing(name string, d direction.Direction) error {
	e, ok := w.byName[name]
	if !ok {
		return fmt.Errorf("world: unknown entity %q", name)
	}
	e.stepper.SetFacing(d)
	return nil
}

// SetMovement replaces the speeds of every entity.
func (w *World) SetMovement(cfg movement.Config) {
	for _, e := range w.entities {
		e.stepper.SetConfig(cfg)
	}
}

// Step dispatches the direction events for the held keys and then advances
// every entity by dt seconds.
func (w *World) Step(keys input.KeyState, dt float64) StepResult {
	var result StepResult
	w.ticks++

	wasMoving := make([]bool, len(w.entities))
	for i, e := range w.entities {
		wasMoving[i] = e.stepper.Moving()
	}

	result.Events = w.source.Poll(keys)

	if len(result.Events) > 0 {
		for i, e := range w.entities {
			switch {
			case wasMoving[i]:
				result.Dropped = append(result.Dropped, e.Name)
			case e.stepper.Moving():
				result.Started = append(result.Started, e.Name)
			}
		}
	}

	for _, e := range w.entities {
		if e.stepper.Tick(dt) {
			result.Completed = append(result.Completed, e.Name)
		}
	}

	return result
}
