package interaction

import (
	"image/color"

	"kernelquest/internal/gamestate"
	"kernelquest/internal/render"
)

// Assets used to draw an NPC. Nil entries are skipped.
type Assets struct {
	Font   render.Font
	Sprite render.Texture
}

const (
	boxX, boxY      = 50.0, 450.0
	boxW, boxH      = 700.0, 130.0
	boxBorder       = 2.0
	lineX, lineY    = 70.0, 470.0
	fallbackPromptW = 100.0
)

var boxFill = color.NRGBA{0, 0, 0, 204}

// Draw renders the NPC, its talk prompt and the dialogue box.
func (c *Controller) Draw(dst render.Canvas, gs *gamestate.GameState, npc *NPC, a Assets) {
	if !c.Active(gs, npc) {
		return
	}

	if a.Sprite != nil {
		w, h := a.Sprite.Size()
		scale := npc.SpriteScale
		if scale == 0 {
			scale = 1
		}
		dst.DrawTexture(a.Sprite, render.TextureOptions{
			X:       npc.Pos.X,
			Y:       npc.Pos.Y,
			OriginX: float64(w) / 2,
			OriginY: float64(h) / 2,
			ScaleX:  scale,
			ScaleY:  scale,
		})
	}

	if c.InRange(gs, npc) && a.Font != nil {
		width := render.TextWidth(a.Font, c.prompt, fallbackPromptW)
		dst.DrawText(c.prompt, a.Font, npc.Pos.X-width/2, npc.Pos.Y-c.promptOffsetY, render.Green)
	}

	if npc.Talking {
		dst.FillRect(boxX, boxY, boxW, boxH, boxFill)
		dst.StrokeRect(boxX, boxY, boxW, boxH, boxBorder, render.White)
		if a.Font != nil {
			dst.DrawText(npc.CurrentLine, a.Font, lineX, lineY, render.White)
		}
	}
}
