package game

import (
	"kernelquest/internal/config"
	"kernelquest/internal/input"
)

// BindingsFromConfig resolves the key names of the keys section.
func BindingsFromConfig(keys config.KeyConfig) (input.Bindings, error) {
	return input.ParseBindings(map[input.Action][]string{
		input.ActionLeft:     keys.Left,
		input.ActionRight:    keys.Right,
		input.ActionUp:       keys.Up,
		input.ActionDown:     keys.Down,
		input.ActionConfirm:  keys.Confirm,
		input.ActionInteract: keys.Interact,
		input.ActionQuit:     keys.Quit,
	})
}
