package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/prefabs"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
	})

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}
	logger.Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)

	runErr := ebiten.RunGame(game)
	game.Close()
	if runErr != nil {
		logger.Fatal("run game", "err", runErr)
	}
}
