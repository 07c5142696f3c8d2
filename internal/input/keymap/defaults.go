package keymap

import (
	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
)

// Defaults returns the built-in keymaps for every mode.
func Defaults() []*Keymap {
	return []*Keymap{
		defaultNormal(),
		defaultPrompt("default-command", mode.Command),
		defaultPrompt("default-search", mode.Search),
		defaultConfirm(),
		defaultView("default-help", mode.Help),
		defaultView("default-logs", mode.Logs),
		defaultTags(),
		defaultOverlay("default-insert", mode.Insert),
		defaultOverlay("default-export", mode.Export),
	}
}

func defaultNormal() *Keymap {
	km := New("default-normal", mode.Normal).WithSource("default")

	km.AddBinding(Binding{Keys: ":", Action: input.ActionModeCommand, Description: "command prompt", Category: "mode"})
	km.AddBinding(Binding{Keys: "/", Action: input.ActionModeSearch, Description: "search", Category: "mode"})
	km.AddBinding(Binding{Keys: "?", Action: input.ActionModeHelp, Description: "help", Category: "mode"})
	km.AddBinding(Binding{Keys: "L", Action: input.ActionModeLogs, Description: "activity log", Category: "mode"})
	km.AddBinding(Binding{Keys: "T", Action: input.ActionModeTags, Description: "tag filter", Category: "mode"})
	km.AddBinding(Binding{Keys: "x", Action: input.ActionModeExport, Description: "export vault", Category: "mode"})

	km.AddBinding(Binding{Keys: "j", Action: input.ActionListDown, Description: "next entry", Category: "list"})
	km.AddBinding(Binding{Keys: "k", Action: input.ActionListUp, Description: "previous entry", Category: "list"})
	km.AddBinding(Binding{Keys: "Down", Action: input.ActionListDown, Description: "next entry", Category: "list"})
	km.AddBinding(Binding{Keys: "Up", Action: input.ActionListUp, Description: "previous entry", Category: "list"})
	km.AddBinding(Binding{Keys: "g", Action: input.ActionListTop, Description: "first entry", Category: "list"})
	km.AddBinding(Binding{Keys: "G", Action: input.ActionListBottom, Description: "last entry", Category: "list"})

	km.AddBinding(Binding{Keys: "n", Action: input.ActionCredNew, Description: "new credential", Category: "credential"})
	km.AddBinding(Binding{Keys: "e", Action: input.ActionCredEdit, Description: "edit credential", Category: "credential"})
	km.AddBinding(Binding{Keys: "Enter", Action: input.ActionCredEdit, Description: "open credential", Category: "credential"})
	km.AddBinding(Binding{Keys: "d", Action: input.ActionCredDelete, Description: "delete credential", Category: "credential"})
	km.AddBinding(Binding{Keys: "c", Action: input.ActionCredCopySecret, Description: "copy password", Category: "credential"})
	km.AddBinding(Binding{Keys: "u", Action: input.ActionCredCopyUser, Description: "copy username", Category: "credential"})
	km.AddBinding(Binding{Keys: "t", Action: input.ActionCredShowTOTP, Description: "show TOTP", Category: "credential"})

	km.AddBinding(Binding{Keys: "q", Action: input.ActionQuit, Description: "quit", Category: "app"})
	km.AddBinding(Binding{Keys: "Ctrl+l", Action: input.ActionLock, Description: "lock vault", Category: "app"})
	km.AddBinding(Binding{Keys: "Escape", Action: input.ActionCancel, Description: "clear message", Category: "app"})

	return km
}

// defaultPrompt covers the editing keys of the Command and Search prompts.
// These must stay in lockstep with buffer.HandleTextKey so pipeline and
// direct-edit input mutate buffers identically.
func defaultPrompt(name string, m mode.Mode) *Keymap {
	km := New(name, m).WithSource("default")

	km.Add("Enter", input.ActionSubmit)
	km.Add("Escape", input.ActionCancel)

	km.Add("Backspace", input.ActionDeleteBack)
	km.Add("Ctrl+Backspace", input.ActionDeleteWordBack)
	km.Add("Alt+Backspace", input.ActionDeleteWordBack)
	km.Add("Delete", input.ActionDeleteForward)
	km.Add("Ctrl+Delete", input.ActionDeleteWordForward)
	km.Add("Alt+Delete", input.ActionDeleteWordForward)

	km.Add("Ctrl+a", input.ActionCursorHome)
	km.Add("Ctrl+e", input.ActionCursorEnd)
	km.Add("Ctrl+u", input.ActionClearToStart)
	km.Add("Ctrl+k", input.ActionClearToEnd)
	km.Add("Ctrl+w", input.ActionDeleteWordBack)

	return km
}

func defaultConfirm() *Keymap {
	km := New("default-confirm", mode.Confirm).WithSource("default")

	km.Add("y", input.ActionConfirmAccept)
	km.Add("Y", input.ActionConfirmAccept)
	km.Add("n", input.ActionConfirmReject)
	km.Add("N", input.ActionConfirmReject)
	km.Add("Escape", input.ActionCancel)

	return km
}

// defaultView covers the scrollable read-only views.
func defaultView(name string, m mode.Mode) *Keymap {
	km := New(name, m).WithSource("default")

	km.Add("Escape", input.ActionCancel)
	km.Add("q", input.ActionCancel)
	km.Add("j", input.ActionListDown)
	km.Add("k", input.ActionListUp)
	km.Add("Down", input.ActionListDown)
	km.Add("Up", input.ActionListUp)
	km.Add("g", input.ActionListTop)
	km.Add("G", input.ActionListBottom)

	return km
}

// defaultTags extends the view keys with toggling the tag under the
// cursor in and out of the tag filter.
func defaultTags() *Keymap {
	km := defaultView("default-tags", mode.Tags)

	km.Add("Enter", input.ActionListSelect)
	km.Add("Space", input.ActionListSelect)

	return km
}

// defaultOverlay covers modes whose keys are consumed by a widget before
// the pipeline; only the exit key is bound here.
func defaultOverlay(name string, m mode.Mode) *Keymap {
	km := New(name, m).WithSource("default")
	km.Add("Escape", input.ActionCancel)
	return km
}
