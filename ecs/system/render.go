package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the backgrounds and, while the run is still playing,
// the obstacles and the player.
type RenderSystem struct {
	textures *assets.Textures
}

func NewRenderSystem(textures *assets.Textures) *RenderSystem {
	return &RenderSystem{textures: textures}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.textures == nil || w == nil {
		return
	}
	screen.Fill(colornames.White)

	st := &w.State
	for i, l := range st.Layers {
		if i >= len(r.textures.Layers) {
			break
		}
		drawRepeated(screen, r.textures.Layers[i], l)
	}

	if st.Outcome.Terminal() {
		return
	}
	for _, o := range st.Obstacles {
		drawFrame(screen, r.textures.Obstacle, o)
	}
	drawFrame(screen, r.textures.Player, st.Player)
}

// drawRepeated draws a layer twice, side by side, at LayerScale.
func drawRepeated(screen, img *ebiten.Image, l component.ScrollLayer) {
	if img == nil {
		return
	}
	for _, x := range l.Tiles() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(component.LayerScale, component.LayerScale)
		op.GeoM.Translate(x, 0)
		screen.DrawImage(img, op)
	}
}

// drawFrame draws the sheet cell selected by a's frame rect at a's position.
func drawFrame(screen, sheet *ebiten.Image, a component.Animation) {
	if sheet == nil {
		return
	}
	f := a.Frame
	src := image.Rect(int(f.X), int(f.Y), int(f.X+f.Width), int(f.Y+f.Height))
	sub, ok := sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(a.Pos.X, a.Pos.Y)
	screen.DrawImage(sub, op)
}
