package dispatcher

import (
	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
)

// ModeHandler executes mode switches on the state machine. Widgets that
// open alongside a mode (the credential form, the export dialog) react
// through the state's change callback.
type ModeHandler struct {
	state *mode.State
}

// NewModeHandler creates the mode namespace handler.
func NewModeHandler(state *mode.State) *ModeHandler {
	return &ModeHandler{state: state}
}

var modeTargets = map[string]mode.Mode{
	input.ActionModeCommand: mode.Command,
	input.ActionModeSearch:  mode.Search,
	input.ActionModeHelp:    mode.Help,
	input.ActionModeLogs:    mode.Logs,
	input.ActionModeTags:    mode.Tags,
	input.ActionModeExport:  mode.Export,
}

func (h *ModeHandler) Namespace() string { return "mode" }

func (h *ModeHandler) CanHandle(name string) bool {
	_, ok := modeTargets[name]
	return ok
}

func (h *ModeHandler) Handle(action input.Action) Result {
	target, ok := modeTargets[action.Name]
	if !ok {
		return Errorf("unknown mode action: %s", action.Name)
	}
	h.state.Set(target)
	return Success()
}
