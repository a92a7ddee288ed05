package game

import (
	"go.uber.org/zap"

	"kernelquest/internal/collision"
	"kernelquest/internal/gamestate"
	"kernelquest/internal/input"
	"kernelquest/internal/interaction"
	"kernelquest/internal/render"
)

// Fallback protagonist rectangle when no player sprite is available.
const (
	playerFallbackW = 24.0
	playerFallbackH = 32.0
	triggerStroke   = 2.0
)

func (gl *GameLoop) updateOverworld(in input.Frame) {
	gs := gl.state
	gs.DecayFade(gl.cfg.Fade.DecayPerTick)

	gl.movePlayer(in)

	for _, npc := range gl.npcs {
		gl.talk.Update(gs, npc, in)
	}

	if gl.trigger.Contains(gs.PlayerPos) {
		gl.log.Debug("combat trigger entered",
			zap.Float64("x", gs.PlayerPos.X), zap.Float64("y", gs.PlayerPos.Y))
		gl.closeDialogues()
		gl.enterTransition()
	}
}

// movePlayer applies held arrow keys. Horizontal movement sets the facing;
// anything else faces front.
func (gl *GameLoop) movePlayer(in input.Frame) {
	gs := gl.state
	speed := gl.cfg.GetMoveSpeed()

	var dx, dy float64
	if in.IsHeld(input.ActionLeft) {
		dx -= speed
	}
	if in.IsHeld(input.ActionRight) {
		dx += speed
	}
	if in.IsHeld(input.ActionUp) {
		dy -= speed
	}
	if in.IsHeld(input.ActionDown) {
		dy += speed
	}

	switch {
	case dx < 0:
		gs.PlayerDir = gamestate.DirectionLeft
	case dx > 0:
		gs.PlayerDir = gamestate.DirectionRight
	default:
		gs.PlayerDir = gamestate.DirectionFront
	}

	if dx == 0 && dy == 0 {
		return
	}
	next := collision.Point{X: gs.PlayerPos.X + dx, Y: gs.PlayerPos.Y + dy}
	gs.PlayerPos = collision.ClampPoint(next,
		float64(gl.cfg.GetScreenWidth()), float64(gl.cfg.GetScreenHeight()))
}

// closeDialogues ends every conversation before leaving the overworld.
func (gl *GameLoop) closeDialogues() {
	for _, npc := range gl.npcs {
		gl.talk.Close(npc)
	}
}

func (gl *GameLoop) drawOverworld(dst render.Canvas) {
	dst.Clear(render.Gray)

	minX, minY, maxX, maxY := gl.trigger.GetBounds()
	dst.StrokeRect(float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY), triggerStroke, render.Red)

	gl.drawPlayer(dst)

	for _, npc := range gl.npcs {
		gl.talk.Draw(dst, gl.state, npc, interaction.Assets{
			Font:   gl.font,
			Sprite: gl.sprite(npc.Sprite),
		})
	}

	if gl.state.FadeAlpha > 0 {
		w, h := float32(gl.cfg.GetScreenWidth()), float32(gl.cfg.GetScreenHeight())
		dst.FillRect(0, 0, w, h, render.Alpha(gl.state.FadeAlpha))
	}
}

// playerSpriteName picks the facing variant, e.g. player_left.
func (gl *GameLoop) playerSpriteName(dir gamestate.Direction) string {
	base := gl.cfg.Overworld.PlayerSprite
	switch dir {
	case gamestate.DirectionLeft:
		return base + "_left"
	case gamestate.DirectionRight:
		return base + "_right"
	default:
		return base
	}
}

func (gl *GameLoop) drawPlayer(dst render.Canvas) {
	pos := gl.state.PlayerPos

	tex := gl.sprite(gl.playerSpriteName(gl.state.PlayerDir))
	if tex == nil {
		tex = gl.sprite(gl.cfg.Overworld.PlayerSprite)
	}
	if tex == nil {
		dst.FillRect(float32(pos.X-playerFallbackW/2), float32(pos.Y-playerFallbackH/2),
			playerFallbackW, playerFallbackH, render.White)
		return
	}

	w, h := tex.Size()
	dst.DrawTexture(tex, render.TextureOptions{
		X:       pos.X,
		Y:       pos.Y,
		OriginX: float64(w) / 2,
		OriginY: float64(h) / 2,
		ScaleX:  1,
		ScaleY:  1,
	})
}
