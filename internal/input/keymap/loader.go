package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
)

// keymapConfig is the JSON structure for user keymap files.
type keymapConfig struct {
	Name     string          `json:"name"`
	Mode     string          `json:"mode"`
	Priority int             `json:"priority,omitempty"`
	Bindings []bindingConfig `json:"bindings"`
}

type bindingConfig struct {
	Keys        string `json:"keys"`
	Action      string `json:"action"`
	Text        string `json:"text,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// LoadFile loads a user keymap from a JSON file. The result overlays the
// defaults through its priority when merged into a Table.
func LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("keymap file %s: %w", path, err)
	}
	return km, nil
}

// LoadReader loads a user keymap from a reader.
func LoadReader(r io.Reader) (*Keymap, error) {
	var cfg keymapConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	m, err := mode.FromName(cfg.Mode)
	if err != nil {
		return nil, err
	}

	priority := cfg.Priority
	if priority == 0 {
		// User overlays beat defaults unless told otherwise.
		priority = 10
	}

	km := New(cfg.Name, m).WithPriority(priority).WithSource("user")
	for i, bc := range cfg.Bindings {
		// A misspelled action should fail here, naming the binding,
		// rather than later during dispatcher construction.
		if !input.Known(bc.Action) {
			return nil, fmt.Errorf("binding %d (%s): unknown action %q", i, bc.Keys, bc.Action)
		}
		km.AddBinding(Binding{
			Keys:        bc.Keys,
			Action:      bc.Action,
			Args:        input.Args{Text: bc.Text},
			Description: bc.Description,
			Category:    bc.Category,
		})
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}
