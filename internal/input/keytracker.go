// Package input turns polled key state into per-frame action events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyReader reports whether a key is currently held down.
type KeyReader func(key ebiten.Key) bool

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// Update records this frame's state and returns true only on the frame the
// key goes from released to pressed.
func (k *KeyStateTracker) Update(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}
