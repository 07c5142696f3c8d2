package dispatcher

import (
	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
)

// CursorHandler executes cursor motions on the mode state's shared buffer.
// The Extend argument switches a motion to its selection-extending variant.
type CursorHandler struct {
	state *mode.State
}

// NewCursorHandler creates the cursor namespace handler.
func NewCursorHandler(state *mode.State) *CursorHandler {
	return &CursorHandler{state: state}
}

func (h *CursorHandler) Namespace() string { return "cursor" }

func (h *CursorHandler) CanHandle(name string) bool {
	switch name {
	case input.ActionCursorLeft, input.ActionCursorRight,
		input.ActionCursorHome, input.ActionCursorEnd,
		input.ActionCursorWordLeft, input.ActionCursorWordRight:
		return true
	}
	return false
}

func (h *CursorHandler) Handle(action input.Action) Result {
	b := h.state.Buffer()
	extend := action.Args.Extend

	switch action.Name {
	case input.ActionCursorLeft:
		if extend {
			b.ExtendLeft()
		} else {
			b.CursorLeft()
		}
	case input.ActionCursorRight:
		if extend {
			b.ExtendRight()
		} else {
			b.CursorRight()
		}
	case input.ActionCursorHome:
		if extend {
			b.ExtendHome()
		} else {
			b.CursorHome()
		}
	case input.ActionCursorEnd:
		if extend {
			b.ExtendEnd()
		} else {
			b.CursorEnd()
		}
	case input.ActionCursorWordLeft:
		if extend {
			b.ExtendWordLeft()
		} else {
			b.CursorWordLeft()
		}
	case input.ActionCursorWordRight:
		if extend {
			b.ExtendWordRight()
		} else {
			b.CursorWordRight()
		}
	default:
		return Errorf("unknown cursor action: %s", action.Name)
	}
	return Success()
}
