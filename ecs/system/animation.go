package system

import (
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
)

// AnimationSystem advances obstacle frames every update. The player only
// runs on frames that started on the ground, including the frame it jumps;
// in the air it holds its current frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cfg := w.Config()
	st := &w.State

	for i, o := range st.Obstacles {
		st.Obstacles[i] = component.Advance(o, w.Delta, cfg.Obstacles.MaxFrame)
	}
	if st.GroundedAtCheck {
		st.Player = component.Advance(st.Player, w.Delta, cfg.Player.MaxFrame)
	}
}
