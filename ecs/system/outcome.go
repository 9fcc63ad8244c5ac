package system

import (
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
)

// OutcomeSystem resolves the frame's outcome. Once any obstacle has hit the
// player the run stays lost.
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

func (o *OutcomeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	st := &w.State
	pad := w.Config().Obstacles.HitPadding

	out := component.Resolve(st.PlayerBox(), st.Hitboxes(pad), st.FinishX, st.GroundedAtCheck)
	if out == component.Lost {
		st.Collided = true
	}
	if st.Collided {
		out = component.Lost
	}
	st.Outcome = out
}
