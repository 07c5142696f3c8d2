package keymap

import (
	"fmt"

	"github.com/dshills/keyvault/internal/input/mode"
)

// Keymap holds key bindings for one mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	Mode mode.Mode

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Priority determines precedence when keymaps bind the same key.
	// Higher priority wins. Defaults use 0; user overlays use higher.
	Priority int

	// Source records where the keymap was defined, e.g. "default", "user".
	Source string
}

// New creates an empty keymap for the given mode.
func New(name string, m mode.Mode) *Keymap {
	return &Keymap{Name: name, Mode: m}
}

// WithPriority sets the keymap priority.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// WithSource sets the keymap source.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add appends a binding.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{Keys: keys, Action: action})
	return k
}

// AddBinding appends a fully configured binding.
func (k *Keymap) AddBinding(b Binding) *Keymap {
	k.Bindings = append(k.Bindings, b)
	return k
}

// Validate checks that every binding parses and names an action.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("keymap %q binding %d: empty keys", k.Name, i)
		}
		if b.Action == "" {
			return fmt.Errorf("keymap %q binding %d (%s): empty action", k.Name, i, b.Keys)
		}
		if _, err := b.Parse(); err != nil {
			return fmt.Errorf("keymap %q binding %d: %w", k.Name, i, err)
		}
	}
	return nil
}
