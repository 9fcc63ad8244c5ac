package ecs

import (
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/component"
)

// State is everything that changes from frame to frame.
type State struct {
	Player    component.Animation
	Body      component.Body
	Obstacles []component.Animation
	Layers    []component.ScrollLayer

	// GroundedAtCheck is the frame's ground check, taken before any jump
	// impulse. Player animation and the finish test read this, not Body.
	GroundedAtCheck bool

	// FinishX is the finish line. It starts at the last obstacle's spawn x
	// and scrolls with the obstacles, independent of them afterwards.
	FinishX float64

	// Collided latches on the first obstacle hit and is never cleared.
	Collided bool
	Outcome  component.Outcome

	Frames int
}

// PlayerBox returns the player's raw collision box.
func (s *State) PlayerBox() common.Rect {
	return s.Player.Bounds()
}

// Hitboxes returns the inset collision box of every obstacle.
func (s *State) Hitboxes(pad float64) []common.Rect {
	boxes := make([]common.Rect, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		boxes = append(boxes, component.Hitbox(o, pad))
	}
	return boxes
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Obstacles = append([]component.Animation(nil), s.Obstacles...)
	s.Layers = append([]component.ScrollLayer(nil), s.Layers...)
	return s
}
