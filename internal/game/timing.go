package game

import (
	"math"

	"kernelquest/internal/config"
)

// BaseTickRate is the rate every frame count and per-tick step in config.yaml
// is written for.
const BaseTickRate = 60

// FramesAt converts a frame count authored at BaseTickRate to tps ticks,
// keeping the same wall-clock duration. A positive count never drops below 1.
func FramesAt(frames, tps int) int {
	if tps <= 0 || tps == BaseTickRate {
		return frames
	}
	t := int(math.Round(float64(frames) * float64(tps) / BaseTickRate))
	if frames > 0 && t < 1 {
		t = 1
	}
	return t
}

// StepAt converts a per-tick step authored at BaseTickRate to tps ticks.
func StepAt(step float64, tps int) float64 {
	if tps <= 0 || tps == BaseTickRate {
		return step
	}
	return step * BaseTickRate / float64(tps)
}

// ScaleToTickRate returns a copy of cfg with every duration and per-tick rate
// converted to cfg.Timing.TicksPerSecond.
func ScaleToTickRate(cfg *config.Config) *config.Config {
	scaled := *cfg
	tps := cfg.GetTPS()

	scaled.Movement.MoveSpeed = StepAt(cfg.Movement.MoveSpeed, tps)
	scaled.Fade.DecayPerTick = StepAt(cfg.Fade.DecayPerTick, tps)
	scaled.Overworld.TransitionFrames = FramesAt(cfg.Overworld.TransitionFrames, tps)
	scaled.Combat.EnemyTurnFrames = FramesAt(cfg.Combat.EnemyTurnFrames, tps)
	scaled.Combat.ShakeDecay = StepAt(cfg.Combat.ShakeDecay, tps)
	scaled.Interaction.DialogueFrames = FramesAt(cfg.Interaction.DialogueFrames, tps)
	return &scaled
}
