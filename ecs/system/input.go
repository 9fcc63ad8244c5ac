package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dasher/component"
)

// PollInput samples the jump key for this frame. Space and the gamepad's
// bottom face button both count.
func PollInput() component.Input {
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return component.Input{JumpPressed: jumpPressed}
}
