package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/keyvault/internal/dispatcher"
	"github.com/dshills/keyvault/internal/input/key"
	"github.com/dshills/keyvault/internal/input/keymap"
	"github.com/dshills/keyvault/internal/input/mode"
	"github.com/dshills/keyvault/internal/widget"
)

// ErrQuit signals a clean user-requested shutdown.
var ErrQuit = errors.New("quit requested")

// Config configures the application.
type Config struct {
	// Logger defaults to a stderr logger at info level.
	Logger *Logger

	// KeymapPath names an optional user keymap file layered over the
	// defaults.
	KeymapPath string

	// Clipboard receives copied secrets. When nil, copy actions report
	// that no clipboard is available.
	Clipboard func(text string) error
}

// App owns the whole input side of the program: modal state, keymap
// table, dispatcher, widgets and the vault item list they operate on.
type App struct {
	logger   *Logger
	activity *ActivityLog

	state      *mode.State
	table      *keymap.Table
	dispatcher *dispatcher.Dispatcher

	form     *widget.CredentialForm
	formOpen bool
	export   *widget.ExportDialog

	items    []Item
	selected int
	filter   string

	tagCursor int
	tagFilter map[string]bool

	status        string
	confirmPrompt string
	onConfirm     func() dispatcher.Result

	clipboard func(string) error
	locked    bool
	quit      bool
}

// New builds the application: defaults plus any user keymap, the mode
// state machine, and a dispatcher covering every bindable action. An
// unhandleable binding is a construction error, not a runtime surprise.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger(DefaultLoggerConfig())
	}

	a := &App{
		logger:    logger,
		activity:  NewActivityLog(defaultActivityCap),
		state:     mode.NewState(),
		form:      widget.NewCredentialForm(),
		export:    widget.NewExportDialog(),
		clipboard: cfg.Clipboard,
		tagFilter: make(map[string]bool),
	}
	logger.Tap(a.activity.Append)

	keymaps := keymap.Defaults()
	if cfg.KeymapPath != "" {
		user, err := keymap.LoadFile(cfg.KeymapPath)
		if err != nil {
			return nil, fmt.Errorf("loading keymap %s: %w", cfg.KeymapPath, err)
		}
		keymaps = append(keymaps, user)
	}

	table, err := keymap.NewTable(keymaps...)
	if err != nil {
		return nil, fmt.Errorf("building keymap table: %w", err)
	}
	a.table = table

	a.state.OnChange(a.modeChanged)

	d, err := dispatcher.New(table, a.state,
		dispatcher.NewCursorHandler(a.state),
		dispatcher.NewEditHandler(a.state),
		dispatcher.NewModeHandler(a.state),
		dispatcher.NewPromptHandler(a.state, a.promptSubmitted, a.promptCancelled),
		a.listHandler(),
		a.credHandler(),
		a.confirmHandler(),
		a.appHandler(),
	)
	if err != nil {
		return nil, fmt.Errorf("building dispatcher: %w", err)
	}
	a.dispatcher = d

	logger.Info("application initialized")
	return a, nil
}

// modeChanged reacts to mode transitions: widgets open and close with the
// mode they belong to, so cancel paths need no widget knowledge.
func (a *App) modeChanged(from, to mode.Mode) {
	if from == mode.Insert && to != mode.Insert {
		a.form.Reset()
		a.formOpen = false
	}
	if to == mode.Insert {
		a.formOpen = true
	}
	if to == mode.Export {
		a.export.Reset()
	}
	if to == mode.Tags {
		// The tag list may have shrunk since the last visit.
		if n := len(a.TagNames()); a.tagCursor >= n {
			a.tagCursor = 0
		}
	}
	if from == mode.Export && to != mode.Export {
		a.export.Passphrase().Wipe()
	}
}

// HandleKeyEvent routes one key event. While a direct-edit widget is
// open its HandleKey runs first; only keys the widget declines reach the
// modal pipeline.
func (a *App) HandleKeyEvent(ev key.Event) dispatcher.Result {
	var res dispatcher.Result

	switch {
	case a.state.Is(mode.Insert) && a.formOpen:
		if a.form.HandleKey(ev) {
			res = dispatcher.Success()
		} else if ev.IsEnter() {
			res = a.saveForm()
		} else {
			res = a.dispatcher.HandleKey(ev)
		}
	case a.state.Is(mode.Export):
		if a.export.HandleKey(ev) {
			res = dispatcher.Success()
		} else if ev.IsEnter() {
			res = a.runExport()
		} else {
			res = a.dispatcher.HandleKey(ev)
		}
	default:
		res = a.dispatcher.HandleKey(ev)
	}

	if res.IsError() {
		a.logger.Error("%v", res.Err)
		a.status = res.Err.Error()
	} else if res.Message != "" {
		a.status = res.Message
	}
	if res.Quit {
		a.quit = true
	}
	return res
}

// saveForm validates and commits the credential form, then returns to
// Normal mode. Validation failures keep the form open.
func (a *App) saveForm() dispatcher.Result {
	if err := a.form.Validate(); err != nil {
		return dispatcher.Result{Status: dispatcher.StatusError, Err: err}
	}

	values := a.form.Values()
	item := Item{
		ID:         a.form.Editing(),
		Name:       values[widget.FieldName],
		Type:       values[widget.FieldCredType],
		Username:   values[widget.FieldUsername],
		Secret:     values[widget.FieldPassword],
		URL:        values[widget.FieldURL],
		Tags:       splitTags(values[widget.FieldTags]),
		TOTPSecret: values[widget.FieldTOTPSecret],
		Notes:      values[widget.FieldNotes],
	}

	if item.ID == "" {
		item.ID = newItemID()
		a.items = append(a.items, item)
		a.logger.Info("credential added: %s", item.Name)
	} else {
		for i := range a.items {
			if a.items[i].ID == item.ID {
				a.items[i] = item
				break
			}
		}
		a.logger.Info("credential updated: %s", item.Name)
	}

	a.state.Set(mode.Normal)
	return dispatcher.Success().WithMessage("saved %s", item.Name)
}

// runExport validates the dialog and writes the vault, then returns to
// Normal mode.
func (a *App) runExport() dispatcher.Result {
	if err := a.export.Validate(); err != nil {
		return dispatcher.Result{Status: dispatcher.StatusError, Err: err}
	}

	path := a.export.Path().Text()
	if err := writeExport(path, a.items, a.export); err != nil {
		return dispatcher.Result{Status: dispatcher.StatusError, Err: err}
	}

	a.logger.Info("vault exported to %s", path)
	a.state.Set(mode.Normal)
	return dispatcher.Success().WithMessage("exported %d entries to %s", len(a.items), path)
}

// VisibleItems returns the items passing the tag filter and matching the
// active search filter, best match first. Without a search filter the
// list keeps its order.
func (a *App) VisibleItems() []Item {
	items := a.items
	if len(a.tagFilter) > 0 {
		tagged := make([]Item, 0, len(items))
		for _, it := range items {
			if it.hasAnyTag(a.tagFilter) {
				tagged = append(tagged, it)
			}
		}
		items = tagged
	}

	if a.filter == "" {
		return items
	}

	type ranked struct {
		item  Item
		score int
	}
	matched := make([]ranked, 0, len(items))
	for _, it := range items {
		if score, ok := it.filterScore(a.filter); ok {
			matched = append(matched, ranked{item: it, score: score})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]Item, len(matched))
	for i, r := range matched {
		out[i] = r.item
	}
	return out
}

// TagNames returns the distinct tags across the vault, sorted.
func (a *App) TagNames() []string {
	counts := a.tagCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *App) tagCounts() map[string]int {
	counts := make(map[string]int)
	for _, it := range a.items {
		for _, tag := range it.Tags {
			counts[tag]++
		}
	}
	return counts
}

// TagCursor returns the cursor position within the sorted tag list.
func (a *App) TagCursor() int { return a.tagCursor }

// ActiveTags returns the selected tag filter, sorted.
func (a *App) ActiveTags() []string {
	tags := make([]string, 0, len(a.tagFilter))
	for tag := range a.tagFilter {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagSelected reports whether the tag is part of the active filter.
func (a *App) TagSelected(tag string) bool { return a.tagFilter[tag] }

// toggleTag flips the tag under the cursor in and out of the filter.
func (a *App) toggleTag() dispatcher.Result {
	names := a.TagNames()
	if a.tagCursor < 0 || a.tagCursor >= len(names) {
		return dispatcher.NoOp()
	}

	tag := names[a.tagCursor]
	if a.tagFilter[tag] {
		delete(a.tagFilter, tag)
	} else {
		a.tagFilter[tag] = true
	}
	a.selected = 0

	if len(a.tagFilter) == 0 {
		return dispatcher.Success().WithMessage("tag filter cleared")
	}
	return dispatcher.Success().WithMessage("tag filter: %s", strings.Join(a.ActiveTags(), ", "))
}

// SelectedItem returns the item under the list cursor.
func (a *App) SelectedItem() (Item, bool) {
	visible := a.VisibleItems()
	if a.selected < 0 || a.selected >= len(visible) {
		return Item{}, false
	}
	return visible[a.selected], true
}

// SetItems replaces the vault contents, for loading and tests.
func (a *App) SetItems(items []Item) {
	a.items = items
	a.selected = 0
}

// Mode returns the current interaction mode.
func (a *App) Mode() mode.Mode { return a.state.Mode() }

// State returns the modal state machine.
func (a *App) State() *mode.State { return a.state }

// Form returns the credential form.
func (a *App) Form() *widget.CredentialForm { return a.form }

// FormOpen reports whether the credential form is consuming keys.
func (a *App) FormOpen() bool { return a.formOpen }

// Export returns the export dialog.
func (a *App) Export() *widget.ExportDialog { return a.export }

// Selected returns the list cursor position within the visible items.
func (a *App) Selected() int { return a.selected }

// Filter returns the active search filter.
func (a *App) Filter() string { return a.filter }

// Status returns the statusline message.
func (a *App) Status() string { return a.status }

// ConfirmPrompt returns the pending confirmation question, if any.
func (a *App) ConfirmPrompt() string { return a.confirmPrompt }

// Activity returns the activity log backing the Logs view.
func (a *App) Activity() *ActivityLog { return a.activity }

// Locked reports whether the vault has been locked.
func (a *App) Locked() bool { return a.locked }

// ShouldQuit reports whether a quit was requested.
func (a *App) ShouldQuit() bool { return a.quit }
