package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
)

// NewLayers builds one scroll layer per configured layer, far to near.
func NewLayers(cfg ecs.Config, textures []image.Point) ([]component.ScrollLayer, error) {
	if len(textures) != len(cfg.Layers) {
		return nil, fmt.Errorf("layers: have %d textures for %d layers", len(textures), len(cfg.Layers))
	}
	layers := make([]component.ScrollLayer, len(cfg.Layers))
	for i, lc := range cfg.Layers {
		layers[i] = component.ScrollLayer{
			Name:  lc.Name,
			Speed: lc.Speed,
			Width: float64(textures[i].X),
		}
	}
	return layers, nil
}
