package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/common"
)

// Animation is the frame state of a sprite drawn from a single-row sheet.
// Frames are laid out left-to-right, each Frame.Width pixels wide.
type Animation struct {
	// Frame is the source rectangle on the sheet for the current frame.
	Frame common.Rect
	// Pos is the top-left draw position in world pixels.
	Pos cp.Vector
	// Index is the current frame, always in [0, maxFrame].
	Index int
	// FrameTime is how many seconds each frame stays on screen.
	FrameTime float64
	// Elapsed is the time accumulated since the last frame change.
	Elapsed float64
}

// NewAnimation returns an animation on frame 0 with a frameW x frameH cell.
func NewAnimation(frameW, frameH float64, pos cp.Vector, frameTime float64) Animation {
	return Animation{
		Frame:     common.Rect{Width: frameW, Height: frameH},
		Pos:       pos,
		FrameTime: frameTime,
	}
}

// Bounds returns the sprite's full on-screen box.
func (a Animation) Bounds() common.Rect {
	return common.Rect{X: a.Pos.X, Y: a.Pos.Y, Width: a.Frame.Width, Height: a.Frame.Height}
}

// Advance returns a after dt more seconds. At most one frame step happens per
// call no matter how large dt is; a stalled frame does not catch up.
func Advance(a Animation, dt float64, maxFrame int) Animation {
	if dt <= 0 {
		return a
	}
	a.Elapsed += dt
	if a.Elapsed < a.FrameTime {
		return a
	}

	a.Elapsed = 0
	a.Index++
	if a.Index > maxFrame {
		a.Index = 0
	}
	a.Frame.X = float64(a.Index) * a.Frame.Width
	return a
}
