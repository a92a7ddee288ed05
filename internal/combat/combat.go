// Package combat implements the turn-based encounter: a menu of Fight, Act
// and Mercy, a scripted enemy turn, and the exit back to the overworld.
package combat

import (
	"fmt"

	"kernelquest/internal/config"
)

// Turn is the combat phase.
type Turn int

const (
	TurnMenu Turn = iota
	TurnFighting
	TurnActing
	TurnMercy
	TurnEnemy
)

func (t Turn) String() string {
	switch t {
	case TurnMenu:
		return "menu"
	case TurnFighting:
		return "fighting"
	case TurnActing:
		return "acting"
	case TurnMercy:
		return "mercy"
	case TurnEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// Menu entries, indexed by CombatData.MenuSelection.
const (
	MenuFight = iota
	MenuAct
	MenuMercy
)

const lastMenuEntry = MenuMercy

// MenuLabels are drawn left to right in menu order.
var MenuLabels = [...]string{"FIGHT", "ACT", "MERCY"}

// CombatData lives from combat entry until the scene exits.
type CombatData struct {
	PlayerHP    int
	PlayerMaxHP int
	EnemyHP     int // not mutated: Fight always misses
	EnemyMaxHP  int

	Turn          Turn
	MenuSelection int // 0: Fight, 1: Act, 2: Mercy

	DialogueText string // shown in TurnMenu and TurnEnemy
	ActionText   string // shown in the other phases

	Timer      float64 // frames spent in TurnEnemy
	EnemyShake float64

	// Ended is set once Mercy is confirmed; an ended encounter ignores input.
	Ended bool
}

// NewCombatData returns a fresh encounter at the menu.
func NewCombatData(cfg config.CombatConfig) *CombatData {
	return &CombatData{
		PlayerHP:      cfg.PlayerHP,
		PlayerMaxHP:   cfg.PlayerHP,
		EnemyHP:       cfg.EnemyHP,
		EnemyMaxHP:    cfg.EnemyHP,
		Turn:          TurnMenu,
		MenuSelection: MenuFight,
		DialogueText:  cfg.IntroText,
	}
}

// DisplayText returns the text for the current phase.
func (d *CombatData) DisplayText() string {
	switch d.Turn {
	case TurnMenu, TurnEnemy:
		return d.DialogueText
	default:
		return d.ActionText
	}
}
