package ecs

import "github.com/milk9111/dasher/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns the run configuration, the mutable state and the system order.
type World struct {
	config  Config
	systems []System

	State State
	Input component.Input
	Delta float64
}

// NewWorld creates a world from a config and its initial state.
func NewWorld(cfg Config, initial State) *World {
	return &World{config: cfg, State: initial}
}

// Config returns the world's configuration.
func (w *World) Config() Config {
	return w.config
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the update order.
func (w *World) Systems() []System {
	return append([]System(nil), w.systems...)
}

// Step runs every system once with dt seconds of elapsed time and the input
// sampled for this frame.
func (w *World) Step(dt float64, in component.Input) {
	if w == nil {
		return
	}
	w.Delta = dt
	w.Input = in
	for _, s := range w.systems {
		s.Update(w)
	}
	w.State.Frames++
}
