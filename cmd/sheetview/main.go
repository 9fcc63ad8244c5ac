package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/prefabs"
	"golang.org/x/image/colornames"
)

const (
	viewWidth  = 512
	viewHeight = 256
)

// sheet is one sprite sheet cycling through frames [0, maxFrame].
type sheet struct {
	img      *ebiten.Image
	anim     component.Animation
	maxFrame int
}

type previewGame struct {
	sheets []*sheet
}

func (g *previewGame) Update() error {
	dt := 1 / float64(ebiten.TPS())
	for _, s := range g.sheets {
		s.anim = component.Advance(s.anim, dt, s.maxFrame)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	for _, s := range g.sheets {
		f := s.anim.Frame
		src := image.Rect(int(f.X), int(f.Y), int(f.X+f.Width), int(f.Y+f.Height))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.anim.Pos.X, s.anim.Pos.Y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(s.img.SubImage(src).(*ebiten.Image), op)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth, viewHeight
}

func loadSheet(name string, cols, rows int, frameTime float64, maxFrame int, slot int) (*sheet, error) {
	img, err := assets.LoadImage(name)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	frameW := float64(b.Dx()) / float64(cols)
	frameH := float64(b.Dy()) / float64(rows)
	pos := cp.Vector{
		X: float64(slot)*viewWidth/2 + (viewWidth/2-frameW)/2,
		Y: (viewHeight - frameH) / 2,
	}
	return &sheet{
		img:      img,
		anim:     component.NewAnimation(frameW, frameH, pos, frameTime),
		maxFrame: maxFrame,
	}, nil
}

func loadSheets(cfg ecs.Config) ([]*sheet, error) {
	player, err := loadSheet(assets.PlayerSheet, cfg.Player.Frames, 1, cfg.Player.FrameTime, cfg.Player.MaxFrame, 0)
	if err != nil {
		return nil, err
	}
	oc := cfg.Obstacles
	obstacle, err := loadSheet(assets.ObstacleSheet, oc.Columns, oc.Rows, oc.FrameTime, oc.MaxFrame, 1)
	if err != nil {
		return nil, err
	}
	return []*sheet{player, obstacle}, nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sheetview"})

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	sheets, err := loadSheets(cfg)
	if err != nil {
		logger.Fatal("load sheets", "err", err)
	}

	ebiten.SetWindowSize(viewWidth, viewHeight)
	ebiten.SetWindowTitle("Sheet Preview")
	if err := ebiten.RunGame(&previewGame{sheets: sheets}); err != nil {
		logger.Fatal("run", "err", err)
	}
}
