package main

import (
	"go.uber.org/zap"

	"kernelquest/internal/character"
	"kernelquest/internal/config"
	"kernelquest/internal/game"
	"kernelquest/internal/graphics"
	"kernelquest/internal/logger"
	"kernelquest/internal/render"
	ebitenrender "kernelquest/internal/render/ebiten"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	if err := logger.Init(cfg.Logging); err != nil {
		panic("Failed to init logger: " + err.Error())
	}
	defer logger.Sync()
	log := logger.Named("main")

	// Load NPC configuration
	character.MustLoadNPCConfig("assets/npcs.yaml")
	npcs, err := character.CreateAllNPCs()
	if err != nil {
		log.Fatal("failed to create NPCs", zap.Error(err))
	}

	var font render.Font
	if f, err := ebitenrender.LoadDefaultFont(float64(cfg.Display.FontSize)); err != nil {
		log.Warn("failed to load font, text will be skipped", zap.Error(err))
	} else {
		font = f
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTPS())

	g, err := game.NewGame(cfg, npcs, graphics.NewSpriteManager("assets"), font)
	if err != nil {
		log.Fatal("failed to create game", zap.Error(err))
	}

	log.Info("starting", zap.String("title", cfg.Display.WindowTitle), zap.Int("tps", cfg.GetTPS()))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game exited with error", zap.Error(err))
	}
}
