package combat

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"kernelquest/internal/config"
	"kernelquest/internal/gamestate"
	"kernelquest/internal/input"
	"kernelquest/internal/logger"
	"kernelquest/internal/mathutil"
)

// Controller advances a CombatData one tick at a time. It keeps no state of
// its own besides configuration and the jitter source.
type Controller struct {
	cfg      config.CombatConfig
	fadeStep float64
	screenW  float64
	screenH  float64
	rng      *rand.Rand
	log      *zap.Logger
}

// NewController creates a controller. rng drives the shake jitter only; nil
// means a fixed seed.
func NewController(cfg *config.Config, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Controller{
		cfg:      cfg.Combat,
		fadeStep: cfg.Fade.DecayPerTick,
		screenW:  float64(cfg.GetScreenWidth()),
		screenH:  float64(cfg.GetScreenHeight()),
		rng:      rng,
		log:      logger.Named("combat"),
	}
}

// NewEncounter returns fresh combat data for this controller's enemy.
func (c *Controller) NewEncounter() *CombatData {
	return NewCombatData(c.cfg)
}

// Update runs one tick. It returns true on the single tick the encounter
// ends; gs.Scene has then been switched to the overworld.
func (c *Controller) Update(gs *gamestate.GameState, d *CombatData, in input.Frame) bool {
	gs.DecayFade(c.fadeStep)
	d.EnemyShake = mathutil.DecayToZero(d.EnemyShake, c.cfg.ShakeDecay)

	if d.Ended {
		return false
	}

	confirm := in.JustPressed(input.ActionConfirm)

	switch d.Turn {
	case TurnMenu:
		if in.JustPressed(input.ActionLeft) && d.MenuSelection > 0 {
			d.MenuSelection--
		}
		if in.JustPressed(input.ActionRight) && d.MenuSelection < lastMenuEntry {
			d.MenuSelection++
		}
		if confirm {
			c.selectMenuEntry(d)
		}

	case TurnFighting, TurnActing:
		if confirm {
			c.setTurn(d, TurnEnemy)
			d.Timer = 0
			d.DialogueText = c.cfg.EnemyTurnText
		}

	case TurnMercy:
		if confirm {
			c.exit(gs, d)
			return true
		}

	case TurnEnemy:
		d.Timer++
		if d.Timer > float64(c.cfg.EnemyTurnFrames) {
			c.setTurn(d, TurnMenu)
			d.DialogueText = c.cfg.TauntText
		}
	}
	return false
}

func (c *Controller) selectMenuEntry(d *CombatData) {
	switch d.MenuSelection {
	case MenuFight:
		c.setTurn(d, TurnFighting)
		d.Timer = 0
		d.ActionText = fmt.Sprintf("You attacked %s... MISS!", c.cfg.EnemyName)
		d.EnemyShake = c.cfg.ShakeStart
	case MenuAct:
		c.setTurn(d, TurnActing)
		d.ActionText = c.cfg.CheckText
	case MenuMercy:
		c.setTurn(d, TurnMercy)
		d.ActionText = fmt.Sprintf("You spared %s.", c.cfg.EnemyName)
	}
}

// exit hands control back to the overworld and moves the protagonist clear
// of the trigger zone so the encounter does not restart next frame.
func (c *Controller) exit(gs *gamestate.GameState, d *CombatData) {
	d.Ended = true
	gs.PlayerPos.X = c.cfg.MercyExitX
	gs.SwitchScene(gamestate.SceneOverworld)
	c.log.Info("combat ended", zap.String("enemy", c.cfg.EnemyName), zap.String("outcome", "spared"))
}

func (c *Controller) setTurn(d *CombatData, next Turn) {
	c.log.Debug("combat turn", zap.Stringer("from", d.Turn), zap.Stringer("to", next))
	d.Turn = next
}

// jitter returns the horizontal shake offset for this frame.
func (c *Controller) jitter(d *CombatData) float64 {
	if d.EnemyShake <= 0 {
		return 0
	}
	j := c.cfg.ShakeJitter
	return c.rng.Float64()*2*j - j
}
