package common

// Rect is an axis-aligned box in world pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and other overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Inset shrinks r by pad on every side.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  r.Width - 2*pad,
		Height: r.Height - 2*pad,
	}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}
