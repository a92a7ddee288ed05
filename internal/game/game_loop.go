package game

import (
	"math/rand"

	"go.uber.org/zap"

	"kernelquest/internal/collision"
	"kernelquest/internal/combat"
	"kernelquest/internal/config"
	"kernelquest/internal/gamestate"
	"kernelquest/internal/input"
	"kernelquest/internal/interaction"
	"kernelquest/internal/logger"
	"kernelquest/internal/render"
)

// SpriteSource looks sprites up by name. A nil result means the sprite is
// unavailable and is not drawn.
type SpriteSource interface {
	GetSprite(name string) render.Texture
}

// transitionFlashFrames is how long each black/white flash lasts while
// entering combat.
const transitionFlashFrames = 6

// GameLoop dispatches Update and Draw to the active scene. It owns the shared
// GameState and every controller, and has no dependency on the window so it
// can be driven frame by frame.
type GameLoop struct {
	cfg   *config.Config
	state *gamestate.GameState

	combat    *combat.Controller
	encounter *combat.CombatData

	talk *interaction.Controller
	npcs []*interaction.NPC

	trigger        *collision.BoundingBox
	transitionLeft int

	sprites SpriteSource
	font    render.Font
	log     *zap.Logger
}

// NewGameLoop creates the dispatcher. cfg durations are converted to the
// configured tick rate. sprites and font may be nil.
func NewGameLoop(cfg *config.Config, npcs []*interaction.NPC, sprites SpriteSource, font render.Font, rng *rand.Rand) *GameLoop {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	scaled := ScaleToTickRate(cfg)
	ow := scaled.Overworld
	zone := ow.CombatTrigger

	return &GameLoop{
		cfg:     scaled,
		state:   gamestate.New(collision.Point{X: ow.SpawnX, Y: ow.SpawnY}, ow.Stage),
		combat:  combat.NewController(scaled, rng),
		talk:    interaction.NewController(scaled.Interaction, rng),
		npcs:    npcs,
		trigger: collision.FromRect(zone.X, zone.Y, zone.Width, zone.Height),
		sprites: sprites,
		font:    font,
		log:     logger.Named("game"),
	}
}

// State returns the shared game state.
func (gl *GameLoop) State() *gamestate.GameState {
	return gl.state
}

// Encounter returns the running combat data, or nil outside combat.
func (gl *GameLoop) Encounter() *combat.CombatData {
	return gl.encounter
}

// NPCs returns the overworld NPCs.
func (gl *GameLoop) NPCs() []*interaction.NPC {
	return gl.npcs
}

// Update advances the active scene by one tick.
func (gl *GameLoop) Update(in input.Frame) {
	switch gl.state.Scene {
	case gamestate.SceneOverworld:
		gl.updateOverworld(in)
	case gamestate.SceneCombatTransition:
		gl.updateTransition()
	case gamestate.SceneCombat:
		gl.updateCombat(in)
	}
}

func (gl *GameLoop) enterTransition() {
	gl.transitionLeft = gl.cfg.Overworld.TransitionFrames
	gl.state.SwitchScene(gamestate.SceneCombatTransition)
}

func (gl *GameLoop) updateTransition() {
	gl.transitionLeft--
	if gl.transitionLeft > 0 {
		return
	}
	gl.transitionLeft = 0
	gl.encounter = gl.combat.NewEncounter()
	gl.state.StartFade(1)
	gl.state.SwitchScene(gamestate.SceneCombat)
	gl.log.Info("combat started", zap.String("enemy", gl.cfg.Combat.EnemyName))
}

func (gl *GameLoop) updateCombat(in input.Frame) {
	if gl.encounter == nil {
		gl.encounter = gl.combat.NewEncounter()
	}
	if gl.combat.Update(gl.state, gl.encounter, in) {
		gl.encounter = nil
	}
}

// Draw renders the active scene. Scenes without behavior draw nothing.
func (gl *GameLoop) Draw(dst render.Canvas) {
	switch gl.state.Scene {
	case gamestate.SceneOverworld:
		gl.drawOverworld(dst)
	case gamestate.SceneCombatTransition:
		gl.drawTransition(dst)
	case gamestate.SceneCombat:
		if gl.encounter == nil {
			return
		}
		gl.combat.Draw(dst, gl.state, gl.encounter, combat.Assets{
			Font:  gl.font,
			Enemy: gl.sprite(gl.cfg.Combat.EnemySprite),
			Heart: gl.sprite(gl.cfg.Combat.HeartSprite),
		})
	}
}

func (gl *GameLoop) drawTransition(dst render.Canvas) {
	if (gl.transitionLeft/transitionFlashFrames)%2 == 0 {
		dst.Clear(render.White)
		return
	}
	dst.Clear(render.Black)
}

func (gl *GameLoop) sprite(name string) render.Texture {
	if gl.sprites == nil {
		return nil
	}
	return gl.sprites.GetSprite(name)
}
