package system

import "github.com/milk9111/dasher/ecs"

// ScrollSystem moves every background layer by its own speed.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for i, l := range w.State.Layers {
		w.State.Layers[i] = l.Advance(w.Delta)
	}
}
