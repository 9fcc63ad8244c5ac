package ecs

import (
	"errors"
	"fmt"
)

// Config is the fixed tuning of a run. It never changes after the world is
// built.
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int

	Player    PlayerConfig
	Obstacles ObstacleConfig
	Physics   PhysicsConfig
	Layers    []LayerConfig
	Banner    BannerConfig
}

// PlayerConfig describes the player sprite sheet and its animation cadence.
type PlayerConfig struct {
	Frames    int     // frames across the sheet
	FrameTime float64 // seconds per frame
	MaxFrame  int
}

// ObstacleConfig describes the obstacle sheet and spawn policy.
type ObstacleConfig struct {
	Count          int
	Spacing        float64 // pixels between consecutive spawns
	Velocity       float64 // pixels per second, negative moves left
	Columns        int     // sheet grid columns
	Rows           int     // sheet grid rows
	FrameTime      float64
	InitialElapsed float64 // animation phase at spawn
	MaxFrame       int
	HitPadding     float64 // inset applied to each side of the hitbox
}

// PhysicsConfig holds the player's vertical motion constants.
type PhysicsConfig struct {
	Gravity     float64 // pixels per second squared, positive is down
	JumpImpulse float64 // pixels per second, negative is up
}

// LayerConfig is one parallax background layer, far to near.
type LayerConfig struct {
	Name  string
	Speed float64
}

// BannerConfig is the text shown when a run ends.
type BannerConfig struct {
	LostText string
	WonText  string
	Size     float64
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Title:  "Dapper Dasher",
		Width:  512,
		Height: 375,
		TPS:    60,
		Player: PlayerConfig{
			Frames:    6,
			FrameTime: 1.0 / 9.0,
			MaxFrame:  5,
		},
		Obstacles: ObstacleConfig{
			Count:    6,
			Spacing:  500,
			Velocity: -200,
			Columns:  8,
			Rows:     8,
			// Obstacles spawn one full frame in, so they step on their
			// first update.
			FrameTime:      1.0 / 16.0,
			InitialElapsed: 1.0 / 16.0,
			MaxFrame:       7,
			HitPadding:     50,
		},
		Physics: PhysicsConfig{
			Gravity:     800,
			JumpImpulse: -600,
		},
		Layers: []LayerConfig{
			{Name: "far-buildings", Speed: 20},
			{Name: "back-buildings", Speed: 40},
			{Name: "foreground", Speed: 80},
		},
		Banner: BannerConfig{
			LostText: "Game Over!",
			WonText:  "You Win!",
			Size:     30,
		},
	}
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("ecs: invalid window size %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("ecs: invalid tps %d", c.TPS)
	case c.Player.Frames <= 0:
		return fmt.Errorf("ecs: player frames must be positive, got %d", c.Player.Frames)
	case c.Player.FrameTime <= 0:
		return fmt.Errorf("ecs: player frame time must be positive, got %v", c.Player.FrameTime)
	case c.Player.MaxFrame < 0:
		return fmt.Errorf("ecs: player max frame must not be negative, got %d", c.Player.MaxFrame)
	case c.Obstacles.Count <= 0:
		return fmt.Errorf("ecs: obstacle count must be positive, got %d", c.Obstacles.Count)
	case c.Obstacles.Columns <= 0 || c.Obstacles.Rows <= 0:
		return fmt.Errorf("ecs: invalid obstacle grid %dx%d", c.Obstacles.Columns, c.Obstacles.Rows)
	case c.Obstacles.FrameTime <= 0:
		return fmt.Errorf("ecs: obstacle frame time must be positive, got %v", c.Obstacles.FrameTime)
	case c.Obstacles.MaxFrame < 0:
		return fmt.Errorf("ecs: obstacle max frame must not be negative, got %d", c.Obstacles.MaxFrame)
	case c.Obstacles.HitPadding < 0:
		return fmt.Errorf("ecs: hit padding must not be negative, got %v", c.Obstacles.HitPadding)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("ecs: gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("ecs: jump impulse must be negative, got %v", c.Physics.JumpImpulse)
	case len(c.Layers) == 0:
		return errors.New("ecs: at least one background layer is required")
	}
	for _, l := range c.Layers {
		if l.Speed < 0 {
			return fmt.Errorf("ecs: layer %q speed must not be negative, got %v", l.Name, l.Speed)
		}
	}
	return nil
}
