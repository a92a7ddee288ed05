package interaction

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"kernelquest/internal/collision"
	"kernelquest/internal/config"
	"kernelquest/internal/gamestate"
	"kernelquest/internal/input"
	"kernelquest/internal/logger"
	"kernelquest/internal/render"
	"kernelquest/internal/render/rendertest"
)

var testLines = []string{
	"Don't go to the dead space!",
	"It drains your health...",
	"Why are we here?",
}

func newTestNPC(t *testing.T, playerX float64) (*Controller, *gamestate.GameState, *NPC) {
	t.Helper()
	cfg := config.Default()
	c := NewController(cfg.Interaction, rand.New(rand.NewSource(3)))
	gs := gamestate.New(collision.Point{X: playerX, Y: 300}, 4)
	npc := &NPC{
		Key:         "eilish",
		Name:        "Eilish",
		Pos:         collision.Point{X: 400, Y: 300},
		Stage:       4,
		SpriteScale: 0.1,
		Lines:       testLines,
	}
	return c, gs, npc
}

func inPool(line string) bool {
	for _, l := range testLines {
		if l == line {
			return true
		}
	}
	return false
}

func TestFarAwayInteractDoesNothing(t *testing.T) {
	c, gs, npc := newTestNPC(t, 400+120)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if npc.Talking {
		t.Fatalf("expected idle at distance 120")
	}
	if npc.CurrentLine != "" || npc.DialogueTimer != 0 {
		t.Fatalf("expected no line or timer, got %q %v", npc.CurrentLine, npc.DialogueTimer)
	}
}

func TestInteractStartsDialogue(t *testing.T) {
	c, gs, npc := newTestNPC(t, 400+119)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if !npc.Talking {
		t.Fatalf("expected talking")
	}
	if npc.DialogueTimer != 300 {
		t.Fatalf("expected timer 300, got %v", npc.DialogueTimer)
	}
	if !inPool(npc.CurrentLine) {
		t.Fatalf("expected line from pool, got %q", npc.CurrentLine)
	}
}

func TestNoInteractNoDialogue(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	for i := 0; i < 10; i++ {
		c.Update(gs, npc, input.Hold(input.ActionInteract))
	}
	if npc.Talking {
		t.Fatalf("expected held key without an edge to do nothing")
	}
}

func TestDialogueTimesOut(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	line := npc.CurrentLine

	for i := 0; i < 299; i++ {
		c.Update(gs, npc, input.Frame{})
		if !npc.Talking {
			t.Fatalf("closed early at tick %d", i+1)
		}
		if npc.CurrentLine != line {
			t.Fatalf("line changed while talking")
		}
	}
	c.Update(gs, npc, input.Frame{})
	if npc.Talking {
		t.Fatalf("expected dialogue closed after 300 ticks")
	}

	// Stays idle without a new press.
	for i := 0; i < 30; i++ {
		c.Update(gs, npc, input.Frame{})
	}
	if npc.Talking {
		t.Fatalf("expected no further dialogue until re-triggered")
	}
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if !npc.Talking || npc.DialogueTimer != 300 {
		t.Fatalf("expected re-trigger to restart dialogue")
	}
}

func TestInteractWhileTalkingKeepsLine(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	line := npc.CurrentLine
	for i := 0; i < 20; i++ {
		c.Update(gs, npc, input.Press(input.ActionInteract))
		if npc.CurrentLine != line {
			t.Fatalf("expected line to stay while talking")
		}
	}
	if npc.DialogueTimer != 280 {
		t.Fatalf("expected timer to keep counting down, got %v", npc.DialogueTimer)
	}
}

func TestWalkingAwayForcesClose(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	c.Update(gs, npc, input.Frame{})

	gs.PlayerPos.X = 400 + 150
	c.Update(gs, npc, input.Frame{})
	if npc.Talking {
		t.Fatalf("expected forced close when out of range")
	}
}

func TestNPCMovedAwayForcesClose(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	npc.Pos.Y = 0
	c.Update(gs, npc, input.Frame{})
	if npc.Talking {
		t.Fatalf("expected close when the npc moves away")
	}
	if npc.Pos.Y != 0 {
		t.Fatalf("controller must not move the npc")
	}
}

func TestOtherStageIsInactive(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	gs.Stage = 2
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if npc.Talking {
		t.Fatalf("expected npc inactive on another stage")
	}
	var rec rendertest.Recorder
	c.Draw(&rec, gs, npc, Assets{Font: &rendertest.Font{RuneWidth: 8, LineHeight: 16}})
	if len(rec.Calls) != 0 {
		t.Fatalf("expected nothing drawn on another stage, got %d calls", len(rec.Calls))
	}
}

func TestStageChangeClosesDialogue(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if !npc.Talking {
		t.Fatalf("expected talking after interact")
	}

	gs.Stage = 5
	c.Update(gs, npc, input.Frame{})
	if npc.Talking || npc.DialogueTimer != 0 {
		t.Fatalf("expected dialogue closed on stage change, got %+v", npc)
	}

	gs.Stage = 4
	c.Update(gs, npc, input.Frame{})
	if npc.Talking {
		t.Fatalf("expected dialogue to stay closed when the stage returns")
	}
}

func TestEmptyPoolNeverTalks(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	npc.Lines = nil
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if npc.Talking {
		t.Fatalf("expected npc without lines to stay idle")
	}
}

func TestLineSelectionCoversPool(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		npc.Talking = false
		c.Update(gs, npc, input.Press(input.ActionInteract))
		seen[npc.CurrentLine] = true
	}
	if len(seen) != len(testLines) {
		t.Fatalf("expected every line picked eventually, saw %v", seen)
	}
}

func TestDrawPromptAndBox(t *testing.T) {
	c, gs, npc := newTestNPC(t, 410)
	font := &rendertest.Font{RuneWidth: 10, LineHeight: 16}
	assets := Assets{Font: font, Sprite: &rendertest.Texture{W: 500, H: 800}}

	var rec rendertest.Recorder
	c.Draw(&rec, gs, npc, assets)

	prompt, ok := rec.FindText("Press F to Talk")
	if !ok {
		t.Fatalf("expected talk prompt in range")
	}
	if prompt.X != 400-75 || prompt.Y != 240 {
		t.Fatalf("expected prompt centered above npc at (325,240), got (%v,%v)", prompt.X, prompt.Y)
	}
	if prompt.Color != render.Green {
		t.Fatalf("expected green prompt")
	}
	if n := len(rec.Of(rendertest.KindStrokeRect)); n != 0 {
		t.Fatalf("expected no dialogue box while idle")
	}

	c.Update(gs, npc, input.Press(input.ActionInteract))
	rec.Reset()
	c.Draw(&rec, gs, npc, assets)
	fills := rec.Of(rendertest.KindFillRect)
	if len(fills) != 1 || fills[0].X != 50 || fills[0].Y != 450 || fills[0].Width != 700 || fills[0].Height != 130 {
		t.Fatalf("unexpected dialogue box %+v", fills)
	}
	if _, ok := rec.FindText(npc.CurrentLine); !ok {
		t.Fatalf("expected current line drawn")
	}

	gs.PlayerPos.X = 700
	rec.Reset()
	c.Draw(&rec, gs, npc, assets)
	if _, ok := rec.FindText("Press F"); ok {
		t.Fatalf("expected no prompt out of range")
	}
}

func TestCloseEndsConversation(t *testing.T) {
	c, gs, npc := newTestNPC(t, 400)
	c.Update(gs, npc, input.Press(input.ActionInteract))
	if !npc.Talking {
		t.Fatalf("expected talking after interact")
	}
	c.Close(npc)
	if npc.Talking || npc.DialogueTimer != 0 {
		t.Fatalf("expected closed conversation, got %+v", npc)
	}
	c.Close(npc)
	if npc.Talking {
		t.Fatalf("expected closing an idle npc to be a no-op")
	}
}

func TestDialogueLogsCarryNPCName(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	c, gs, npc := newTestNPC(t, 400)
	c.Update(gs, npc, input.Press(input.ActionInteract))

	started := logs.FilterMessage("dialogue started").All()
	if len(started) != 1 {
		t.Fatalf("expected one dialogue start entry, got %d", len(started))
	}
	entry := started[0]
	if entry.LoggerName != "interaction" {
		t.Fatalf("expected interaction logger, got %q", entry.LoggerName)
	}
	if entry.ContextMap()["name"] != "Eilish" {
		t.Fatalf("expected npc name in log fields, got %v", entry.ContextMap())
	}
}
