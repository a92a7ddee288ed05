// Package interaction runs proximity-triggered NPC dialogue: walk up to an
// NPC, press the interact key, read a random line until it times out or the
// protagonist walks away.
package interaction

import (
	"math/rand"

	"go.uber.org/zap"

	"kernelquest/internal/collision"
	"kernelquest/internal/config"
	"kernelquest/internal/gamestate"
	"kernelquest/internal/input"
	"kernelquest/internal/logger"
)

// NPC is an overworld character the protagonist can talk to. Pos may be moved
// by scripted code; the controller never changes it.
type NPC struct {
	Key         string
	Name        string
	Pos         collision.Point
	Stage       int // only active on this stage; 0 means every stage
	Sprite      string
	SpriteScale float64
	Lines       []string

	Talking       bool
	DialogueTimer float64
	CurrentLine   string
}

// Controller owns the talk rules; per-NPC state lives on the NPC.
type Controller struct {
	radius        float64
	duration      float64
	prompt        string
	promptOffsetY float64
	rng           *rand.Rand
	log           *zap.Logger
}

// NewController creates a controller. A nil rng means a fixed seed.
func NewController(cfg config.InteractionConfig, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Controller{
		radius:        cfg.ProximityRadius,
		duration:      float64(cfg.DialogueFrames),
		prompt:        cfg.Prompt,
		promptOffsetY: cfg.PromptOffsetY,
		rng:           rng,
		log:           logger.Named("interaction"),
	}
}

// Active reports whether npc participates on the current stage.
func (c *Controller) Active(gs *gamestate.GameState, npc *NPC) bool {
	return npc.Stage == 0 || npc.Stage == gs.Stage
}

// InRange reports whether the protagonist is close enough to talk.
func (c *Controller) InRange(gs *gamestate.GameState, npc *NPC) bool {
	return collision.Distance(gs.PlayerPos, npc.Pos) < c.radius
}

// Update runs one tick for npc.
func (c *Controller) Update(gs *gamestate.GameState, npc *NPC, in input.Frame) {
	if !c.Active(gs, npc) {
		if npc.Talking {
			c.stop(npc, "stage_changed")
		}
		return
	}

	if !c.InRange(gs, npc) {
		if npc.Talking {
			c.stop(npc, "out_of_range")
		}
		return
	}

	if npc.Talking {
		npc.DialogueTimer--
		if npc.DialogueTimer <= 0 {
			c.stop(npc, "timeout")
		}
		return
	}

	if in.JustPressed(input.ActionInteract) {
		c.start(npc)
	}
}

func (c *Controller) start(npc *NPC) {
	if len(npc.Lines) == 0 {
		c.log.Warn("npc has no dialogue lines", zap.String("npc", npc.Key), zap.String("name", npc.Name))
		return
	}
	npc.CurrentLine = npc.Lines[c.rng.Intn(len(npc.Lines))]
	npc.DialogueTimer = c.duration
	npc.Talking = true
	c.log.Debug("dialogue started", zap.String("npc", npc.Key), zap.String("name", npc.Name), zap.String("line", npc.CurrentLine))
}

// Close ends npc's conversation, if any.
func (c *Controller) Close(npc *NPC) {
	if npc.Talking {
		c.stop(npc, "closed")
	}
}

func (c *Controller) stop(npc *NPC, reason string) {
	npc.Talking = false
	npc.DialogueTimer = 0
	c.log.Debug("dialogue closed", zap.String("npc", npc.Key), zap.String("name", npc.Name), zap.String("reason", reason))
}
