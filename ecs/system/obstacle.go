package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/ecs"
)

// ObstacleSystem slides every obstacle and the finish line left at the
// shared obstacle velocity.
type ObstacleSystem struct{}

func NewObstacleSystem() *ObstacleSystem {
	return &ObstacleSystem{}
}

func (o *ObstacleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dx := w.Config().Obstacles.Velocity * w.Delta
	step := cp.Vector{X: dx}
	for i := range w.State.Obstacles {
		w.State.Obstacles[i].Pos = w.State.Obstacles[i].Pos.Add(step)
	}
	w.State.FinishX += dx
}
