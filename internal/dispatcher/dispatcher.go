package dispatcher

import (
	"fmt"

	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/key"
	"github.com/dshills/keyvault/internal/input/keymap"
	"github.com/dshills/keyvault/internal/input/mode"
)

// Dispatcher resolves key events through the keymap table and routes the
// resulting actions to handlers.
type Dispatcher struct {
	table    *keymap.Table
	state    *mode.State
	handlers map[string]Handler
}

// New builds a dispatcher and validates handler coverage: every action
// name the table can produce must be claimed by a registered handler.
func New(table *keymap.Table, state *mode.State, handlers ...Handler) (*Dispatcher, error) {
	d := &Dispatcher{
		table:    table,
		state:    state,
		handlers: make(map[string]Handler, len(handlers)),
	}

	for _, h := range handlers {
		ns := h.Namespace()
		if _, dup := d.handlers[ns]; dup {
			return nil, fmt.Errorf("duplicate handler for namespace %q", ns)
		}
		d.handlers[ns] = h
	}

	for name := range table.Actions() {
		h, ok := d.handlers[input.New(name).Namespace()]
		if !ok {
			return nil, fmt.Errorf("no handler for action: %s", name)
		}
		if !h.CanHandle(name) {
			return nil, fmt.Errorf("handler %q does not handle action: %s", h.Namespace(), name)
		}
	}

	return d, nil
}

// HandleKey runs one key event through the pipeline: resolve in the
// current mode, then dispatch. Unmapped events return NoOp with no state
// touched.
func (d *Dispatcher) HandleKey(ev key.Event) Result {
	action, ok := d.table.Resolve(d.state.Mode(), ev)
	if !ok {
		return NoOp()
	}
	return d.Dispatch(action)
}

// Dispatch routes an already-resolved action to its handler.
func (d *Dispatcher) Dispatch(action input.Action) Result {
	h, ok := d.handlers[action.Namespace()]
	if !ok {
		return Errorf("no handler for action: %s", action.Name)
	}
	return h.Handle(action)
}

// Mode returns the current mode, for callers that render after dispatch.
func (d *Dispatcher) Mode() mode.Mode {
	return d.state.Mode()
}
