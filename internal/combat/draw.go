package combat

import (
	"fmt"
	"math"

	"kernelquest/internal/gamestate"
	"kernelquest/internal/mathutil"
	"kernelquest/internal/render"
)

// Assets are the resources combat draws with. Any of them may be nil; the
// element using it is skipped.
type Assets struct {
	Font  render.Font
	Enemy render.Texture
	Heart render.Texture
}

// Layout, in screen units.
const (
	enemyX, enemyY = 400.0, 200.0
	enemyScale     = 3.0
	boxX, boxY     = 50.0, 350.0
	boxW, boxH     = 700.0, 150.0
	boxStroke      = 4.0
	textX, textY   = 70.0, 370.0
	buttonStartX   = 100.0
	buttonSpacing  = 200.0
	buttonY        = 530.0
	heartOffsetX   = 30.0
	heartScale     = 0.1
	hpBarX, hpBarY = 20.0, 20.0
	hpBarW, hpBarH = 150.0, 15.0
	hpLabelGap     = 10.0
)

// Draw renders the encounter. It reads state only.
func (c *Controller) Draw(dst render.Canvas, gs *gamestate.GameState, d *CombatData, a Assets) {
	dst.Clear(render.Black)

	if a.Enemy != nil {
		w, h := a.Enemy.Size()
		dst.DrawTexture(a.Enemy, render.TextureOptions{
			X:       enemyX + c.jitter(d),
			Y:       enemyY,
			OriginX: float64(w) / 2,
			OriginY: float64(h) / 2,
			ScaleX:  enemyScale,
			ScaleY:  enemyScale,
		})
	}

	dst.StrokeRect(boxX, boxY, boxW, boxH, boxStroke, render.White)

	if a.Font != nil {
		dst.DrawText(d.DisplayText(), a.Font, textX, textY, render.White)
	}

	for i, label := range MenuLabels {
		x := buttonStartX + float64(i)*buttonSpacing
		selected := d.Turn == TurnMenu && d.MenuSelection == i
		clr := render.Orange
		if selected {
			clr = render.Yellow
		}
		if a.Font != nil {
			dst.DrawText(label, a.Font, x, buttonY, clr)
		}
		if selected && a.Heart != nil {
			dst.DrawTexture(a.Heart, render.TextureOptions{
				X:      x - heartOffsetX,
				Y:      buttonY,
				ScaleX: heartScale,
				ScaleY: heartScale,
			})
		}
	}

	c.drawHPBar(dst, d, a.Font)

	if gs.FadeAlpha > 0 {
		dst.FillRect(0, 0, float32(c.screenW), float32(c.screenH), render.Alpha(gs.FadeAlpha))
	}
}

func (c *Controller) drawHPBar(dst render.Canvas, d *CombatData, font render.Font) {
	dst.FillRect(hpBarX, hpBarY, hpBarW, hpBarH, render.Gray)

	frac := mathutil.Ratio(d.PlayerHP, d.PlayerMaxHP)
	if fill := frac * hpBarW; fill > 0 {
		dst.FillRect(hpBarX, hpBarY, float32(fill), hpBarH, render.Red)
	}

	if font != nil {
		label := fmt.Sprintf("HP: %.0f%%", math.Round(frac*100))
		dst.DrawText(label, font, hpBarX+hpBarW+hpLabelGap, hpBarY, render.White)
	}
}
