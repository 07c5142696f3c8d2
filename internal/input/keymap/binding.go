package keymap

import (
	"fmt"

	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/key"
)

// Binding maps one key specification to an action.
type Binding struct {
	// Keys is the key specification, e.g. "q", "Ctrl+u", "<C-w>".
	Keys string

	// Action is the namespaced action name, e.g. "edit.deleteWordBack".
	Action string

	// Args are passed to the action unchanged.
	Args input.Args

	// Description is shown in the help view.
	Description string

	// Category groups bindings in the help view.
	Category string
}

// Parse resolves the key specification to the canonical event.
func (b Binding) Parse() (key.Event, error) {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return key.Event{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	return ev, nil
}

// ToAction builds the action this binding produces.
func (b Binding) ToAction() input.Action {
	return input.Action{Name: b.Action, Args: b.Args}
}
