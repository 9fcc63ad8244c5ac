package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed textures/*.png
var assetsFS embed.FS

const (
	PlayerSheet   = "scarfy.png"
	ObstacleSheet = "12_nebula_spritesheet.png"
)

// missingSize is the edge length of the stand-in for a texture that failed
// to load.
const missingSize = 32

// Textures holds every image a run draws. Layers are ordered far to near.
type Textures struct {
	Player   *ebiten.Image
	Obstacle *ebiten.Image
	Layers   []*ebiten.Image
}

// LoadImage decodes an embedded texture by name, e.g. "scarfy.png".
func LoadImage(name string) (*ebiten.Image, error) {
	clean := cleanAssetPath(name)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Load loads the player sheet, the obstacle sheet and one texture per layer
// name. A texture that cannot be loaded is logged and replaced with a magenta
// square so the run still starts.
func Load(logger *log.Logger, layers []string) *Textures {
	t := &Textures{
		Player:   loadOrMissing(logger, PlayerSheet),
		Obstacle: loadOrMissing(logger, ObstacleSheet),
		Layers:   make([]*ebiten.Image, 0, len(layers)),
	}
	for _, name := range layers {
		t.Layers = append(t.Layers, loadOrMissing(logger, name+".png"))
	}
	return t
}

// Release frees the GPU memory behind every texture. The textures must not be
// drawn afterwards.
func (t *Textures) Release() {
	if t == nil {
		return
	}
	for _, img := range t.all() {
		if img != nil {
			img.Deallocate()
		}
	}
	t.Player = nil
	t.Obstacle = nil
	t.Layers = nil
}

// Sizes returns the pixel size of the player sheet, the obstacle sheet and
// each layer.
func (t *Textures) Sizes() (player, obstacle image.Point, layers []image.Point) {
	player = t.Player.Bounds().Size()
	obstacle = t.Obstacle.Bounds().Size()
	for _, l := range t.Layers {
		layers = append(layers, l.Bounds().Size())
	}
	return player, obstacle, layers
}

func (t *Textures) all() []*ebiten.Image {
	imgs := []*ebiten.Image{t.Player, t.Obstacle}
	return append(imgs, t.Layers...)
}

func loadOrMissing(logger *log.Logger, name string) *ebiten.Image {
	img, err := LoadImage(name)
	if err == nil {
		return img
	}
	if logger != nil {
		logger.Warn("texture missing, using placeholder", "texture", name, "err", err)
	}
	missing := ebiten.NewImage(missingSize, missingSize)
	missing.Fill(color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff})
	return missing
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		s = s[idx+len("/assets/"):]
	}
	s = strings.TrimPrefix(s, "assets/")
	if !strings.HasPrefix(s, "textures/") {
		s = "textures/" + s
	}
	return s
}
