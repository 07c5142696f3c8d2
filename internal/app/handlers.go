package app

import (
	"strings"

	"github.com/dshills/keyvault/internal/dispatcher"
	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/mode"
	"github.com/dshills/keyvault/internal/widget"
)

// listHandler moves whichever list cursor the current mode shows: the
// tag list in Tags mode, the credential list everywhere else.
func (a *App) listHandler() dispatcher.Handler {
	cursor := func() (*int, int) {
		if a.state.Is(mode.Tags) {
			return &a.tagCursor, len(a.TagNames())
		}
		return &a.selected, len(a.VisibleItems())
	}

	return dispatcher.NewFuncHandler("list", map[string]func(input.Action) dispatcher.Result{
		input.ActionListUp: func(input.Action) dispatcher.Result {
			if pos, _ := cursor(); *pos > 0 {
				*pos--
			}
			return dispatcher.Success()
		},
		input.ActionListDown: func(input.Action) dispatcher.Result {
			if pos, n := cursor(); *pos < n-1 {
				*pos++
			}
			return dispatcher.Success()
		},
		input.ActionListTop: func(input.Action) dispatcher.Result {
			pos, _ := cursor()
			*pos = 0
			return dispatcher.Success()
		},
		input.ActionListBottom: func(input.Action) dispatcher.Result {
			if pos, n := cursor(); n > 0 {
				*pos = n - 1
			}
			return dispatcher.Success()
		},
		input.ActionListSelect: func(input.Action) dispatcher.Result {
			if a.state.Is(mode.Tags) {
				return a.toggleTag()
			}
			return dispatcher.NoOp()
		},
	})
}

func (a *App) credHandler() dispatcher.Handler {
	return dispatcher.NewFuncHandler("cred", map[string]func(input.Action) dispatcher.Result{
		input.ActionCredNew:        func(input.Action) dispatcher.Result { return a.openNewForm() },
		input.ActionCredEdit:       func(input.Action) dispatcher.Result { return a.openEditForm() },
		input.ActionCredDelete:     func(input.Action) dispatcher.Result { return a.requestDelete() },
		input.ActionCredCopySecret: func(input.Action) dispatcher.Result { return a.copyField("password", func(it Item) string { return it.Secret }) },
		input.ActionCredCopyUser:   func(input.Action) dispatcher.Result { return a.copyField("username", func(it Item) string { return it.Username }) },
		input.ActionCredShowTOTP:   func(input.Action) dispatcher.Result { return a.showTOTP() },
	})
}

func (a *App) confirmHandler() dispatcher.Handler {
	return dispatcher.NewFuncHandler("confirm", map[string]func(input.Action) dispatcher.Result{
		input.ActionConfirmAccept: func(input.Action) dispatcher.Result {
			accept := a.onConfirm
			a.onConfirm = nil
			a.confirmPrompt = ""
			a.state.Set(mode.Normal)
			if accept == nil {
				return dispatcher.NoOp()
			}
			return accept()
		},
		input.ActionConfirmReject: func(input.Action) dispatcher.Result {
			a.onConfirm = nil
			a.confirmPrompt = ""
			a.state.Set(mode.Normal)
			return dispatcher.Success().WithMessage("cancelled")
		},
	})
}

// appHandler covers quit and lock. Locking wipes the in-memory secrets
// and ends the session; reopening the vault requires a fresh unlock.
func (a *App) appHandler() dispatcher.Handler {
	return dispatcher.NewFuncHandler("app", map[string]func(input.Action) dispatcher.Result{
		input.ActionQuit: func(input.Action) dispatcher.Result {
			a.logger.Info("quit requested")
			return dispatcher.Result{Status: dispatcher.StatusOK, Quit: true}
		},
		input.ActionLock: func(input.Action) dispatcher.Result {
			a.lock()
			return dispatcher.Result{Status: dispatcher.StatusOK, Quit: true, Message: "vault locked"}
		},
	})
}

func (a *App) lock() {
	a.form.Reset()
	a.export.Reset()
	a.export.Passphrase().Wipe()
	a.items = nil
	a.selected = 0
	a.filter = ""
	a.tagFilter = make(map[string]bool)
	a.tagCursor = 0
	a.locked = true
	a.logger.Info("vault locked")
}

func (a *App) openNewForm() dispatcher.Result {
	a.form.Reset()
	a.state.Set(mode.Insert)
	return dispatcher.Success()
}

func (a *App) openEditForm() dispatcher.Result {
	item, ok := a.SelectedItem()
	if !ok {
		return dispatcher.NoOp()
	}

	a.form.Reset()
	a.form.SetEditing(item.ID)
	fill := map[string]string{
		widget.FieldName:       item.Name,
		widget.FieldCredType:   item.Type,
		widget.FieldUsername:   item.Username,
		widget.FieldPassword:   item.Secret,
		widget.FieldURL:        item.URL,
		widget.FieldTags:       strings.Join(item.Tags, ", "),
		widget.FieldTOTPSecret: item.TOTPSecret,
		widget.FieldNotes:      item.Notes,
	}
	for _, fld := range a.form.Fields() {
		fld.SetValue(fill[fld.Label])
	}

	a.state.Set(mode.Insert)
	return dispatcher.Success()
}

func (a *App) requestDelete() dispatcher.Result {
	item, ok := a.SelectedItem()
	if !ok {
		return dispatcher.NoOp()
	}

	a.confirmPrompt = "Delete " + item.Name + "? (y/n)"
	a.onConfirm = func() dispatcher.Result { return a.deleteItem(item.ID) }
	a.state.Set(mode.Confirm)
	return dispatcher.Success()
}

func (a *App) deleteItem(id string) dispatcher.Result {
	for i := range a.items {
		if a.items[i].ID == id {
			name := a.items[i].Name
			a.items = append(a.items[:i], a.items[i+1:]...)
			if a.selected >= len(a.VisibleItems()) && a.selected > 0 {
				a.selected--
			}
			a.logger.Info("credential deleted: %s", name)
			return dispatcher.Success().WithMessage("deleted %s", name)
		}
	}
	return dispatcher.Errorf("credential not found")
}

func (a *App) copyField(label string, pick func(Item) string) dispatcher.Result {
	item, ok := a.SelectedItem()
	if !ok {
		return dispatcher.NoOp()
	}
	value := pick(item)
	if value == "" {
		return dispatcher.Success().WithMessage("%s has no %s", item.Name, label)
	}
	if a.clipboard == nil {
		return dispatcher.Errorf("no clipboard available")
	}
	if err := a.clipboard(value); err != nil {
		return dispatcher.Errorf("copying %s: %w", label, err)
	}
	a.logger.Info("%s copied for %s", label, item.Name)
	return dispatcher.Success().WithMessage("%s copied", label)
}

func (a *App) showTOTP() dispatcher.Result {
	item, ok := a.SelectedItem()
	if !ok {
		return dispatcher.NoOp()
	}
	if item.TOTPSecret == "" {
		return dispatcher.Success().WithMessage("%s has no TOTP secret", item.Name)
	}
	code, err := totpCode(item.TOTPSecret, timeNow())
	if err != nil {
		return dispatcher.Result{Status: dispatcher.StatusError, Err: err}
	}
	return dispatcher.Success().WithMessage("TOTP %s (%ds left)", code, totpRemaining(timeNow()))
}

// promptSubmitted runs when Enter commits the Command or Search prompt.
func (a *App) promptSubmitted(from mode.Mode, text string) dispatcher.Result {
	switch from {
	case mode.Command:
		return a.runCommand(text)
	case mode.Search:
		a.filter = strings.TrimSpace(text)
		a.selected = 0
		if a.filter == "" {
			return dispatcher.Success().WithMessage("filter cleared")
		}
		return dispatcher.Success().WithMessage("filter: %s", a.filter)
	default:
		return dispatcher.Success()
	}
}

// promptCancelled runs when Escape abandons a prompt or view.
func (a *App) promptCancelled(from mode.Mode) dispatcher.Result {
	if from == mode.Normal {
		a.status = ""
		a.filter = ""
		a.selected = 0
		a.tagFilter = make(map[string]bool)
	}
	a.onConfirm = nil
	a.confirmPrompt = ""
	return dispatcher.Success()
}

// runCommand executes a ":" command by name.
func (a *App) runCommand(text string) dispatcher.Result {
	cmd := strings.TrimSpace(text)
	switch cmd {
	case "":
		return dispatcher.NoOp()
	case "q", "quit":
		return dispatcher.Result{Status: dispatcher.StatusOK, Quit: true}
	case "lock":
		a.lock()
		return dispatcher.Result{Status: dispatcher.StatusOK, Quit: true, Message: "vault locked"}
	case "new":
		return a.openNewForm()
	case "delete":
		return a.requestDelete()
	case "export":
		a.state.Set(mode.Export)
		return dispatcher.Success()
	case "help":
		a.state.Set(mode.Help)
		return dispatcher.Success()
	case "logs":
		a.state.Set(mode.Logs)
		return dispatcher.Success()
	default:
		return dispatcher.Errorf("unknown command: %s", cmd)
	}
}
