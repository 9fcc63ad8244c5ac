package entity

import (
	"fmt"
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
)

// NewPlayer centers the player horizontally and stands it on the floor. One
// cell is sheet width / frame count wide and the full sheet tall.
func NewPlayer(cfg ecs.Config, sheet image.Point) (component.Animation, error) {
	if sheet.X <= 0 || sheet.Y <= 0 {
		return component.Animation{}, fmt.Errorf("player: invalid sheet size %v", sheet)
	}
	frameW := float64(sheet.X) / float64(cfg.Player.Frames)
	frameH := float64(sheet.Y)
	pos := cp.Vector{
		X: float64(cfg.Width)/2 - frameW/2,
		Y: float64(cfg.Height) - frameH,
	}
	return component.NewAnimation(frameW, frameH, pos, cfg.Player.FrameTime), nil
}
