// Package gamestate holds the state shared by every scene: which scene is
// active, where the protagonist stands and the fade overlay opacity.
package gamestate

import (
	"fmt"

	"go.uber.org/zap"

	"kernelquest/internal/collision"
	"kernelquest/internal/logger"
	"kernelquest/internal/mathutil"
)

// Scene identifies the active scene.
type Scene int

const (
	SceneBoot Scene = iota
	SceneLoginUsername
	SceneLoginPassword
	SceneMenu
	SceneTransitionToDesktop
	SceneDesktop
	SceneCombatTransition
	SceneCombat
	SceneConfig
	SceneKernelPanic
	SceneAyasofyaInside
)

// SceneOverworld is the walkable desktop scene combat returns to.
const SceneOverworld = SceneDesktop

var sceneNames = map[Scene]string{
	SceneBoot:                "boot",
	SceneLoginUsername:       "login_username",
	SceneLoginPassword:       "login_password",
	SceneMenu:                "menu",
	SceneTransitionToDesktop: "transition_to_desktop",
	SceneDesktop:             "desktop",
	SceneCombatTransition:    "combat_transition",
	SceneCombat:              "combat",
	SceneConfig:              "config",
	SceneKernelPanic:         "kernel_panic",
	SceneAyasofyaInside:      "ayasofya_inside",
}

func (s Scene) String() string {
	if name, ok := sceneNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scene(%d)", int(s))
}

// Direction is the protagonist's facing.
type Direction int

const (
	DirectionFront Direction = iota
	DirectionLeft
	DirectionRight
)

// GameState is owned by the scene dispatcher and passed by pointer into each
// controller's Update and Draw.
type GameState struct {
	Scene     Scene
	Stage     int
	PlayerPos collision.Point
	PlayerDir Direction
	FadeAlpha float64 // [0,1]
}

// New returns a state positioned at spawn in the overworld.
func New(spawn collision.Point, stage int) *GameState {
	return &GameState{
		Scene:     SceneOverworld,
		Stage:     stage,
		PlayerPos: spawn,
		PlayerDir: DirectionFront,
	}
}

// SwitchScene changes the active scene and logs the transition.
func (s *GameState) SwitchScene(next Scene) {
	if s.Scene == next {
		return
	}
	logger.Named("scene").Debug("scene switch", zap.Stringer("from", s.Scene), zap.Stringer("to", next))
	s.Scene = next
}

// StartFade sets the overlay to alpha (clamped to [0,1]).
func (s *GameState) StartFade(alpha float64) {
	s.FadeAlpha = mathutil.ClampF(alpha, 0, 1)
}

// DecayFade lowers the overlay by step, never below zero.
func (s *GameState) DecayFade(step float64) {
	s.FadeAlpha = mathutil.DecayToZero(s.FadeAlpha, step)
}
