package dispatcher

import (
	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
)

// EditHandler executes buffer mutations on the mode state's shared buffer.
type EditHandler struct {
	state *mode.State
}

// NewEditHandler creates the edit namespace handler.
func NewEditHandler(state *mode.State) *EditHandler {
	return &EditHandler{state: state}
}

func (h *EditHandler) Namespace() string { return "edit" }

func (h *EditHandler) CanHandle(name string) bool {
	switch name {
	case input.ActionInsertChar, input.ActionDeleteBack, input.ActionDeleteForward,
		input.ActionDeleteWordBack, input.ActionDeleteWordForward,
		input.ActionClearLine, input.ActionClearToStart, input.ActionClearToEnd:
		return true
	}
	return false
}

func (h *EditHandler) Handle(action input.Action) Result {
	b := h.state.Buffer()

	switch action.Name {
	case input.ActionInsertChar:
		if action.Args.Text == "" {
			return Errorf("insertChar without text")
		}
		b.InsertString(action.Args.Text)
	case input.ActionDeleteBack:
		b.DeleteBack()
	case input.ActionDeleteForward:
		b.DeleteForward()
	case input.ActionDeleteWordBack:
		b.DeleteWordBack()
	case input.ActionDeleteWordForward:
		b.DeleteWordForward()
	case input.ActionClearLine:
		b.Clear()
	case input.ActionClearToStart:
		b.ClearToStart()
	case input.ActionClearToEnd:
		b.ClearToEnd()
	default:
		return Errorf("unknown edit action: %s", action.Name)
	}
	return Success()
}
