package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"kernelquest/internal/config"
	"kernelquest/internal/input"
	"kernelquest/internal/interaction"
	"kernelquest/internal/render"
	ebitenrender "kernelquest/internal/render/ebiten"
)

// Game adapts GameLoop to ebiten.Game.
type Game struct {
	loop   *GameLoop
	poller *input.Poller
	width  int
	height int
}

// NewGame wires the game loop to live keyboard input.
func NewGame(cfg *config.Config, npcs []*interaction.NPC, sprites SpriteSource, font render.Font) (*Game, error) {
	bindings, err := BindingsFromConfig(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key bindings: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{
		loop:   NewGameLoop(cfg, npcs, sprites, font, rng),
		poller: input.NewPoller(bindings),
		width:  cfg.GetScreenWidth(),
		height: cfg.GetScreenHeight(),
	}, nil
}

// Loop exposes the scene dispatcher.
func (g *Game) Loop() *GameLoop {
	return g.loop
}

func (g *Game) Update() error {
	frame := g.poller.Poll()
	if frame.JustPressed(input.ActionQuit) {
		g.loop.log.Info("quit requested")
		return ebiten.Termination
	}
	g.loop.Update(frame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Draw(ebitenrender.NewCanvas(screen))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
