package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/keyvault/internal/input/mode"
	"github.com/dshills/keyvault/internal/term"
	"github.com/dshills/keyvault/internal/widget"
)

// Run drives the terminal event loop until the user quits or locks the
// vault. Handler errors land on the statusline; they never stop the loop.
func (a *App) Run(t *term.Terminal) error {
	t.OnResize(func(w, h int) {
		a.logger.Debug("resized to %dx%d", w, h)
	})

	for {
		a.render(t)

		ev, ok := t.PollKey()
		if !ok {
			return nil
		}
		a.HandleKeyEvent(ev)

		if a.quit {
			return ErrQuit
		}
	}
}

// render paints the minimal list-and-statusline screen.
func (a *App) render(t *term.Terminal) {
	t.Clear()
	w, h := t.Size()
	if h < 3 {
		t.Show()
		return
	}

	t.Print(0, 0, "keyvault")
	if a.filter != "" {
		t.Print(10, 0, "[filter: "+a.filter+"]")
	}

	switch a.state.Mode() {
	case mode.Insert:
		a.renderForm(t)
	case mode.Export:
		a.renderExport(t)
	case mode.Logs:
		a.renderLogs(t, h)
	case mode.Tags:
		a.renderTags(t, h)
	case mode.Help:
		a.renderHelp(t, h)
	default:
		a.renderList(t, h)
	}

	a.renderStatusline(t, w, h)
	t.Show()
}

func (a *App) renderList(t *term.Terminal, h int) {
	visible := a.VisibleItems()
	for i, it := range visible {
		y := i + 2
		if y >= h-1 {
			break
		}
		marker := "  "
		if i == a.selected {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-30s %-10s %s", marker, it.Name, it.Type, it.Username)
		t.Print(0, y, line)
	}
	if len(visible) == 0 {
		t.Print(2, 2, "no entries (n to add)")
	}
}

func (a *App) renderForm(t *term.Terminal) {
	title := "New credential"
	if a.form.Editing() != "" {
		title = "Edit credential"
	}
	t.Print(2, 2, title)

	for i, fld := range a.form.Fields() {
		y := i + 4
		marker := "  "
		if i == a.form.ActiveIndex() {
			marker = "> "
		}
		t.Print(2, y, fmt.Sprintf("%s%-12s %s", marker, fld.Label+":", fld.Display(a.form.Reveal())))
	}

	active := a.form.Active()
	if active.Type != widget.FieldSelect {
		t.ShowCursor(17+active.CursorColumn(a.form.Reveal()), a.form.ActiveIndex()+4)
	} else {
		t.HideCursor()
	}
}

func (a *App) renderExport(t *term.Terminal) {
	t.Print(2, 2, "Export vault")

	rows := []struct {
		field widget.ExportField
		label string
		value string
	}{
		{widget.ExportFormatField, "Format:", a.export.Format().String()},
		{widget.ExportEncryptField, "Encrypted:", fmt.Sprintf("%v", a.export.Encrypted())},
		{widget.ExportPassphraseField, "Passphrase:", strings.Repeat("*", a.export.Passphrase().Len())},
		{widget.ExportPathField, "Path:", a.export.Path().Text()},
	}
	for i, row := range rows {
		if row.field == widget.ExportPassphraseField && !a.export.Encrypted() {
			continue
		}
		marker := "  "
		if row.field == a.export.Active() {
			marker = "> "
		}
		t.Print(2, i+4, fmt.Sprintf("%s%-12s %s", marker, row.label, row.value))
	}
}

func (a *App) renderLogs(t *term.Terminal, h int) {
	t.Print(2, 2, "Activity")
	entries := a.activity.Entries()

	start := 0
	if max := h - 5; len(entries) > max && max > 0 {
		start = len(entries) - max
	}
	for i, e := range entries[start:] {
		y := i + 4
		if y >= h-1 {
			break
		}
		t.Print(2, y, fmt.Sprintf("%s [%s] %s", e.Time.Format("15:04:05"), e.Level, e.Message))
	}
}

func (a *App) renderTags(t *term.Terminal, h int) {
	t.Print(2, 2, "Tags (Enter toggles, Esc applies)")

	names := a.TagNames()
	counts := a.tagCounts()
	for i, name := range names {
		y := i + 4
		if y >= h-1 {
			break
		}
		marker := "  "
		if i == a.tagCursor {
			marker = "> "
		}
		check := "[ ]"
		if a.TagSelected(name) {
			check = "[x]"
		}
		t.Print(2, y, fmt.Sprintf("%s%s %-20s %d", marker, check, name, counts[name]))
	}
	if len(names) == 0 {
		t.Print(4, 4, "no tags yet")
	}
}

func (a *App) renderHelp(t *term.Terminal, h int) {
	t.Print(2, 2, "Keys")
	lines := []string{
		"j/k       move",
		"n/e/d     new / edit / delete credential",
		"c/u       copy password / username",
		"t         show TOTP code",
		"/         search    :  command    x  export",
		"L/T       activity log / tag filter",
		"Ctrl+l    lock      q  quit       Esc back",
	}
	for i, line := range lines {
		y := i + 4
		if y >= h-1 {
			break
		}
		t.Print(2, y, line)
	}
}

func (a *App) renderStatusline(t *term.Terminal, w, h int) {
	y := h - 1
	m := a.state.Mode()

	switch {
	case m.IsTextInput():
		buf := a.state.Buffer()
		t.Print(0, y, truncate(m.Indicator()+buf.Text(), w))
		col := runewidth.StringWidth(m.Indicator() + string([]rune(buf.Text())[:buf.Cursor()]))
		t.ShowCursor(col, y)
	case m == mode.Confirm:
		t.Print(0, y, truncate(a.confirmPrompt, w))
		t.HideCursor()
	default:
		line := a.status
		if ind := m.Indicator(); ind != "" {
			if line != "" {
				line = ind + "  " + line
			} else {
				line = ind
			}
		}
		t.Print(0, y, truncate(line, w))
		if m != mode.Insert {
			t.HideCursor()
		}
	}
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
