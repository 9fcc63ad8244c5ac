package entity

import (
	"fmt"
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
)

// SpawnObstacles places obstacle i at window width + i*spacing, all resting
// on the floor and sharing one animation phase.
func SpawnObstacles(cfg ecs.Config, sheet image.Point) ([]component.Animation, error) {
	if sheet.X <= 0 || sheet.Y <= 0 {
		return nil, fmt.Errorf("obstacle: invalid sheet size %v", sheet)
	}
	oc := cfg.Obstacles
	frameW := float64(sheet.X) / float64(oc.Columns)
	frameH := float64(sheet.Y) / float64(oc.Rows)

	obstacles := make([]component.Animation, oc.Count)
	for i := range obstacles {
		pos := cp.Vector{
			X: float64(cfg.Width) + float64(i)*oc.Spacing,
			Y: float64(cfg.Height) - frameH,
		}
		o := component.NewAnimation(frameW, frameH, pos, oc.FrameTime)
		o.Elapsed = oc.InitialElapsed
		obstacles[i] = o
	}
	return obstacles, nil
}

// FinishLine returns the spawn x of the last obstacle.
func FinishLine(obstacles []component.Animation) float64 {
	if len(obstacles) == 0 {
		return 0
	}
	return obstacles[len(obstacles)-1].Pos.X
}
