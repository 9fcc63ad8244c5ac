package component

import "github.com/jakecoffman/cp"

// Body is the vertical motion state of the player. Velocities are in pixels
// per second, positive is down.
type Body struct {
	VelocityY float64
	Grounded  bool
}

// OnGround reports whether a sprite of the given height with its top at y is
// resting on (or has sunk below) floorY.
func OnGround(y, height, floorY float64) bool {
	return y >= floorY-height
}

// Settle runs the ground check for the frame. A grounded body loses all
// vertical velocity; an airborne one accelerates by gravity*dt.
func Settle(b Body, pos cp.Vector, dt, height, floorY, gravity float64) Body {
	b.Grounded = OnGround(pos.Y, height, floorY)
	if b.Grounded {
		b.VelocityY = 0
		return b
	}
	b.VelocityY += gravity * dt
	return b
}

// Jump adds impulse to a grounded body. Airborne bodies are returned as-is,
// so there is no double jump.
func Jump(b Body, impulse float64) Body {
	if !b.Grounded {
		return b
	}
	b.VelocityY += impulse
	b.Grounded = false
	return b
}

// Integrate moves pos by one explicit Euler step of the body's velocity.
func Integrate(pos cp.Vector, b Body, dt float64) cp.Vector {
	return pos.Add(cp.Vector{Y: b.VelocityY * dt})
}

// Step settles the body and then integrates its position for one frame.
func Step(pos cp.Vector, b Body, dt, height, floorY, gravity float64) (cp.Vector, Body) {
	b = Settle(b, pos, dt, height, floorY, gravity)
	return Integrate(pos, b, dt), b
}
