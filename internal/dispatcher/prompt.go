package dispatcher

import (
	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
)

// SubmitFunc receives the committed prompt text and the mode it was typed
// in (Command or Search).
type SubmitFunc func(from mode.Mode, text string) Result

// CancelFunc is told which mode was abandoned.
type CancelFunc func(from mode.Mode) Result

// PromptHandler executes submit and cancel. Submit hands the buffer text
// upward and returns to Normal; cancel returns to Normal discarding any
// uncommitted input.
type PromptHandler struct {
	state    *mode.State
	onSubmit SubmitFunc
	onCancel CancelFunc
}

// NewPromptHandler creates the input namespace handler. Either callback
// may be nil.
func NewPromptHandler(state *mode.State, onSubmit SubmitFunc, onCancel CancelFunc) *PromptHandler {
	return &PromptHandler{state: state, onSubmit: onSubmit, onCancel: onCancel}
}

func (h *PromptHandler) Namespace() string { return "input" }

func (h *PromptHandler) CanHandle(name string) bool {
	return name == input.ActionSubmit || name == input.ActionCancel
}

func (h *PromptHandler) Handle(action input.Action) Result {
	switch action.Name {
	case input.ActionSubmit:
		from := h.state.Mode()
		text := h.state.Submit()
		if h.onSubmit != nil {
			return h.onSubmit(from, text)
		}
		return Success()
	case input.ActionCancel:
		from := h.state.Mode()
		h.state.Cancel()
		if h.onCancel != nil {
			return h.onCancel(from)
		}
		return Success()
	default:
		return Errorf("unknown input action: %s", action.Name)
	}
}
