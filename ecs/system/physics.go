package system

import (
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
)

// PhysicsSystem runs the player's ground check, applies a jump when the
// player is grounded, then integrates the player's vertical position.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cfg := w.Config()
	st := &w.State

	body := component.Settle(st.Body, st.Player.Pos, w.Delta, st.Player.Frame.Height, float64(cfg.Height), cfg.Physics.Gravity)
	st.GroundedAtCheck = body.Grounded
	if w.Input.JumpPressed {
		body = component.Jump(body, cfg.Physics.JumpImpulse)
	}
	st.Body = body
	st.Player.Pos = component.Integrate(st.Player.Pos, body, w.Delta)
}
