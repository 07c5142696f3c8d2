package dispatcher

import "github.com/dshills/keyvault/internal/input"

// Handler executes the actions of one namespace.
type Handler interface {
	// Namespace is the action name prefix this handler owns.
	Namespace() string

	// CanHandle reports whether the handler knows the action name.
	// Construction-time validation calls this for every bindable action.
	CanHandle(name string) bool

	// Handle executes the action.
	Handle(action input.Action) Result
}

// FuncHandler routes a namespace's actions to plain functions. It is the
// convenient way for the application to contribute handlers without
// defining a type per namespace.
type FuncHandler struct {
	namespace string
	actions   map[string]func(input.Action) Result
}

// NewFuncHandler creates a handler for the given namespace.
func NewFuncHandler(namespace string, actions map[string]func(input.Action) Result) *FuncHandler {
	return &FuncHandler{namespace: namespace, actions: actions}
}

func (h *FuncHandler) Namespace() string { return h.namespace }

func (h *FuncHandler) CanHandle(name string) bool {
	_, ok := h.actions[name]
	return ok
}

func (h *FuncHandler) Handle(action input.Action) Result {
	fn, ok := h.actions[action.Name]
	if !ok {
		return Errorf("unknown action %q in namespace %q", action.Name, h.namespace)
	}
	return fn(action)
}
