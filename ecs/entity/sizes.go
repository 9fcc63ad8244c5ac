package entity

import "image"

// Sizes are the pixel dimensions of the loaded textures. Builders only ever
// see dimensions, never the images themselves.
type Sizes struct {
	Player   image.Point
	Obstacle image.Point
	Layers   []image.Point
}
