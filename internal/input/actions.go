package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Action is a logical input, independent of the physical key bound to it.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionConfirm
	ActionInteract
	ActionQuit
	actionCount
)

var actionNames = [...]string{"left", "right", "up", "down", "confirm", "interact", "quit"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions is a set of actions for one frame.
type Actions uint32

// NewActions builds a set from the given actions.
func NewActions(actions ...Action) Actions {
	var s Actions
	for _, a := range actions {
		s |= 1 << uint(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s Actions) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// Frame is what the state machines see each tick: actions that went down this
// frame, and actions currently held.
type Frame struct {
	Pressed Actions
	Held    Actions
}

// JustPressed reports an edge-triggered action.
func (f Frame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// IsHeld reports a level-triggered action.
func (f Frame) IsHeld(a Action) bool {
	return f.Held.Has(a)
}

// Press builds a frame where the given actions were pressed this frame.
func Press(actions ...Action) Frame {
	s := NewActions(actions...)
	return Frame{Pressed: s, Held: s}
}

// Hold builds a frame where the given actions are held without a new press.
func Hold(actions ...Action) Frame {
	return Frame{Held: NewActions(actions...)}
}

// Bindings maps each action to its physical keys. Multiple keys on one
// action are aliases.
type Bindings map[Action][]ebiten.Key

var keyNames = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"enter":     ebiten.KeyEnter,
	"space":     ebiten.KeySpace,
	"escape":    ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// ParseKey resolves a config key name such as "Z", "Enter" or "Left".
func ParseKey(name string) (ebiten.Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}

// ParseBindings converts key names per action into Bindings.
func ParseBindings(names map[Action][]string) (Bindings, error) {
	b := make(Bindings, len(names))
	for action, list := range names {
		for _, name := range list {
			key, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", action, err)
			}
			b[action] = append(b[action], key)
		}
	}
	return b, nil
}
