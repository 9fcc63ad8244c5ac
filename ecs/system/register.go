package system

import "github.com/milk9111/dasher/ecs"

// Register installs the simulation systems in frame order: backgrounds,
// player physics, obstacle motion, animation, outcome.
func Register(w *ecs.World) {
	w.AddSystem(NewScrollSystem())
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(NewObstacleSystem())
	w.AddSystem(NewAnimationSystem())
	w.AddSystem(NewOutcomeSystem())
}
