package main

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// NewOutcomeUIs builds one banner per terminal outcome. Each banner is a
// single red label whose top-left corner sits at a third of the screen width
// and half its height.
func NewOutcomeUIs(cfg ecs.Config) (map[component.Outcome]*ebitenui.UI, error) {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("outcome ui: load font: %w", err)
	}
	var face ebtext.Face = &ebtext.GoTextFace{Source: src, Size: cfg.Banner.Size}

	return map[component.Outcome]*ebitenui.UI{
		component.Lost: newBanner(cfg, cfg.Banner.LostText, &face),
		component.Won:  newBanner(cfg, cfg.Banner.WonText, &face),
	}, nil
}

func newBanner(cfg ecs.Config, label string, face *ebtext.Face) *ebitenui.UI {
	title := widget.NewText(
		widget.TextOpts.Text(label, face, colornames.Red),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: cfg.Width / 3, Top: cfg.Height / 2}),
		)),
	)
	root.AddChild(title)

	return &ebitenui.UI{Container: root}
}
