package entity

import (
	"fmt"

	"github.com/milk9111/dasher/ecs"
)

// NewLevel builds the initial state of a run.
func NewLevel(cfg ecs.Config, sizes Sizes) (ecs.State, error) {
	player, err := NewPlayer(cfg, sizes.Player)
	if err != nil {
		return ecs.State{}, fmt.Errorf("level: %w", err)
	}
	obstacles, err := SpawnObstacles(cfg, sizes.Obstacle)
	if err != nil {
		return ecs.State{}, fmt.Errorf("level: %w", err)
	}
	layers, err := NewLayers(cfg, sizes.Layers)
	if err != nil {
		return ecs.State{}, fmt.Errorf("level: %w", err)
	}

	return ecs.State{
		Player:    player,
		Obstacles: obstacles,
		Layers:    layers,
		FinishX:   FinishLine(obstacles),
	}, nil
}

// NewWorld builds the initial state and wraps it in a world with no systems.
func NewWorld(cfg ecs.Config, sizes Sizes) (*ecs.World, error) {
	st, err := NewLevel(cfg, sizes)
	if err != nil {
		return nil, err
	}
	return ecs.NewWorld(cfg, st), nil
}
