package component

// LayerScale is the draw scale of every background layer. A layer covers
// LayerScale*Width pixels of screen, so two copies tile seamlessly.
const LayerScale = 2.0

// ScrollLayer is one parallax background layer.
type ScrollLayer struct {
	Name   string
	Offset float64 // always in (-LayerScale*Width, 0]
	Speed  float64 // pixels per second, scrolling left
	Width  float64 // source texture width
}

// Scroll moves offset left by speed*dt and wraps it back to 0 once the layer
// has scrolled a full drawn width.
func Scroll(offset, dt, speed, layerWidth float64) float64 {
	offset -= speed * dt
	if offset <= -LayerScale*layerWidth {
		offset = 0
	}
	return offset
}

// Advance returns l scrolled by dt.
func (l ScrollLayer) Advance(dt float64) ScrollLayer {
	l.Offset = Scroll(l.Offset, dt, l.Speed, l.Width)
	return l
}

// Tiles returns the x positions of the two copies drawn each frame.
func (l ScrollLayer) Tiles() [2]float64 {
	return [2]float64{l.Offset, l.Offset + LayerScale*l.Width}
}
