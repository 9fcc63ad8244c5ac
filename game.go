package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/component"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/entity"
	"github.com/milk9111/dasher/ecs/system"
)

type Game struct {
	cfg    ecs.Config
	logger *log.Logger

	world    *ecs.World
	textures *assets.Textures
	render   *system.RenderSystem
	banners  map[component.Outcome]*ebitenui.UI

	lastOutcome component.Outcome
}

func NewGame(cfg ecs.Config, logger *log.Logger) (*Game, error) {
	layerNames := make([]string, 0, len(cfg.Layers))
	for _, l := range cfg.Layers {
		layerNames = append(layerNames, l.Name)
	}
	textures := assets.Load(logger, layerNames)

	player, obstacle, layers := textures.Sizes()
	world, err := entity.NewWorld(cfg, entity.Sizes{Player: player, Obstacle: obstacle, Layers: layers})
	if err != nil {
		textures.Release()
		return nil, fmt.Errorf("game: %w", err)
	}
	system.Register(world)

	banners, err := NewOutcomeUIs(cfg)
	if err != nil {
		textures.Release()
		return nil, fmt.Errorf("game: %w", err)
	}

	logger.Info("level ready",
		"obstacles", len(world.State.Obstacles),
		"finish", world.State.FinishX,
		"player", player,
	)

	return &Game{
		cfg:      cfg,
		logger:   logger,
		world:    world,
		textures: textures,
		render:   system.NewRenderSystem(textures),
		banners:  banners,
	}, nil
}

func (g *Game) Update() error {
	g.world.Step(frameDelta(), system.PollInput())

	out := g.world.State.Outcome
	if out != g.lastOutcome {
		g.logger.Info("outcome changed", "from", g.lastOutcome, "to", out, "frame", g.world.State.Frames)
		g.lastOutcome = out
	}
	if ui, ok := g.banners[out]; ok {
		ui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if ui, ok := g.banners[g.world.State.Outcome]; ok {
		ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Close releases the textures. Call it once the run loop has returned.
func (g *Game) Close() {
	if g == nil {
		return
	}
	g.textures.Release()
	g.logger.Debug("textures released")
}

// frameDelta is the time covered by one update, in seconds.
func frameDelta() float64 {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		tps = float64(ebiten.TPS())
	}
	return 1 / tps
}
