package combat

import (
	"testing"

	"kernelquest/internal/input"
	"kernelquest/internal/render"
	"kernelquest/internal/render/rendertest"
)

func testAssets() Assets {
	return Assets{
		Font:  &rendertest.Font{RuneWidth: 8, LineHeight: 16},
		Enemy: &rendertest.Texture{W: 40, H: 60, Name: "sans"},
		Heart: &rendertest.Texture{W: 200, H: 200, Name: "heart"},
	}
}

func TestDrawHighlightsCursorOnlyInMenu(t *testing.T) {
	c, gs, d := newTestCombat(t)
	c.Update(gs, d, input.Press(input.ActionRight))

	var rec rendertest.Recorder
	c.Draw(&rec, gs, d, testAssets())

	act, ok := rec.FindText("ACT")
	if !ok {
		t.Fatalf("expected ACT label")
	}
	if act.Color != render.Yellow {
		t.Fatalf("expected selected label highlighted, got %v", act.Color)
	}
	fight, _ := rec.FindText("FIGHT")
	if fight.Color != render.Orange {
		t.Fatalf("expected unselected label orange, got %v", fight.Color)
	}
	hearts := 0
	for _, call := range rec.Of(rendertest.KindTexture) {
		if tex, ok := call.Texture.(*rendertest.Texture); ok && tex.Name == "heart" {
			hearts++
			if call.X != act.X-30 {
				t.Fatalf("expected heart left of ACT, got x=%v", call.X)
			}
		}
	}
	if hearts != 1 {
		t.Fatalf("expected one heart cursor, got %d", hearts)
	}

	// Leaving the menu removes the highlight.
	c.Update(gs, d, input.Press(input.ActionConfirm))
	rec.Reset()
	c.Draw(&rec, gs, d, testAssets())
	for _, call := range rec.Of(rendertest.KindText) {
		if call.Color == render.Yellow {
			t.Fatalf("expected no highlight outside the menu, got %q", call.Text)
		}
	}
	if _, ok := rec.FindText("Check: Sans"); !ok {
		t.Fatalf("expected action text while acting")
	}
}

func TestDrawHPBar(t *testing.T) {
	c, gs, d := newTestCombat(t)
	d.PlayerHP = 10

	var rec rendertest.Recorder
	c.Draw(&rec, gs, d, testAssets())

	var fill *rendertest.Call
	for _, call := range rec.Of(rendertest.KindFillRect) {
		if call.Color == render.Red {
			found := call
			fill = &found
		}
	}
	if fill == nil {
		t.Fatalf("expected hp fill rect")
	}
	if fill.Width != 75 {
		t.Fatalf("expected half bar width 75, got %v", fill.Width)
	}
	if _, ok := rec.FindText("HP: 50%"); !ok {
		t.Fatalf("expected HP: 50%% label")
	}
}

func TestDrawHPBarClampsOutOfRange(t *testing.T) {
	c, gs, d := newTestCombat(t)
	d.PlayerHP = 40

	var rec rendertest.Recorder
	c.Draw(&rec, gs, d, testAssets())
	if _, ok := rec.FindText("HP: 100%"); !ok {
		t.Fatalf("expected label clamped to 100%%")
	}

	d.PlayerHP = 0
	rec.Reset()
	c.Draw(&rec, gs, d, testAssets())
	for _, call := range rec.Of(rendertest.KindFillRect) {
		if call.Color == render.Red {
			t.Fatalf("expected no fill at 0 hp")
		}
	}
}

func TestDrawSkipsMissingAssets(t *testing.T) {
	c, gs, d := newTestCombat(t)

	var rec rendertest.Recorder
	c.Draw(&rec, gs, d, Assets{})

	if n := len(rec.Of(rendertest.KindTexture)); n != 0 {
		t.Fatalf("expected no textures drawn, got %d", n)
	}
	if n := len(rec.Of(rendertest.KindText)); n != 0 {
		t.Fatalf("expected no text without a font, got %d", n)
	}
	if n := len(rec.Of(rendertest.KindStrokeRect)); n != 1 {
		t.Fatalf("expected the text box to still be drawn, got %d", n)
	}
	// State is untouched by drawing.
	if d.Turn != TurnMenu || d.MenuSelection != 0 {
		t.Fatalf("drawing changed state: %+v", d)
	}
}

func TestDrawEnemyJittersWhileShaking(t *testing.T) {
	c, gs, d := newTestCombat(t)
	d.EnemyShake = 10

	var rec rendertest.Recorder
	c.Draw(&rec, gs, d, testAssets())
	enemy := rec.Of(rendertest.KindTexture)[0]
	if enemy.X < 395 || enemy.X > 405 {
		t.Fatalf("expected jittered x within 400±5, got %v", enemy.X)
	}
	if enemy.Options.OriginX != 20 || enemy.Options.OriginY != 30 || enemy.Options.ScaleX != 3 {
		t.Fatalf("unexpected enemy draw options %+v", enemy.Options)
	}

	d.EnemyShake = 0
	rec.Reset()
	c.Draw(&rec, gs, d, testAssets())
	if x := rec.Of(rendertest.KindTexture)[0].X; x != 400 {
		t.Fatalf("expected steady x=400, got %v", x)
	}
}

func TestDrawFadeOverlay(t *testing.T) {
	c, gs, d := newTestCombat(t)
	gs.StartFade(0.5)

	var rec rendertest.Recorder
	c.Draw(&rec, gs, d, testAssets())
	fills := rec.Of(rendertest.KindFillRect)
	last := fills[len(fills)-1]
	if last.Width != 800 || last.Height != 600 {
		t.Fatalf("expected full-screen overlay last, got %+v", last)
	}

	gs.FadeAlpha = 0
	rec.Reset()
	c.Draw(&rec, gs, d, testAssets())
	for _, f := range rec.Of(rendertest.KindFillRect) {
		if f.Width == 800 {
			t.Fatalf("expected no overlay without fade")
		}
	}
}
