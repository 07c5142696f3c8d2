package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/keyvault/internal/buffer"
	"github.com/dshills/keyvault/internal/input/key"
)

// FieldType determines how a field edits and displays.
type FieldType uint8

const (
	// FieldText is a plain single-line text field.
	FieldText FieldType = iota

	// FieldSecret is a masked field backed by a wiping buffer.
	FieldSecret

	// FieldSelect cycles through a fixed option list.
	FieldSelect

	// FieldMultiLine is a text field that accepts Enter as a newline.
	FieldMultiLine
)

// Field is one entry of a form. Text-like fields own a buffer.Editor;
// select fields own an option list.
type Field struct {
	Label    string
	Type     FieldType
	Required bool
	Masked   bool

	editor   buffer.Editor
	options  []string
	selected int
}

// NewTextField creates a plain text field.
func NewTextField(label string, required bool) *Field {
	return &Field{Label: label, Type: FieldText, Required: required, editor: buffer.New()}
}

// NewPasswordField creates a masked field backed by a SecureBuffer.
func NewPasswordField(label string, required bool) *Field {
	return &Field{Label: label, Type: FieldSecret, Required: required, Masked: true, editor: buffer.NewSecure()}
}

// NewSelectField creates a field cycling through options.
func NewSelectField(label string, options []string) *Field {
	return &Field{Label: label, Type: FieldSelect, options: options}
}

// NewMultiLineField creates a text field that accepts embedded newlines.
func NewMultiLineField(label string) *Field {
	return &Field{Label: label, Type: FieldMultiLine, editor: buffer.New()}
}

// Editor returns the field's editor, or nil for select fields.
func (f *Field) Editor() buffer.Editor {
	return f.editor
}

// Value returns the field content: the selected option for select fields,
// the editor text otherwise.
func (f *Field) Value() string {
	if f.Type == FieldSelect {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.selected]
	}
	return f.editor.Text()
}

// SetValue replaces the field content. For select fields the value must
// match an option; unknown values leave the selection unchanged.
func (f *Field) SetValue(v string) {
	if f.Type == FieldSelect {
		for i, opt := range f.options {
			if opt == v {
				f.selected = i
				return
			}
		}
		return
	}
	f.editor.SetText(v)
}

// IsEmpty returns true if the field holds no content.
func (f *Field) IsEmpty() bool {
	if f.Type == FieldSelect {
		return len(f.options) == 0
	}
	return f.editor.IsEmpty()
}

// Display returns what the renderer draws for the field. Masked fields
// show bullets unless reveal is set.
func (f *Field) Display(reveal bool) string {
	if f.Type == FieldSelect {
		return f.Value()
	}
	if f.Masked && !reveal {
		return strings.Repeat("•", f.editor.Len())
	}
	return f.editor.Text()
}

// CursorColumn returns the display-width column of the cursor, for the
// renderer to place the terminal cursor. Masked fields are all
// single-width bullets, so the column equals the rune offset.
func (f *Field) CursorColumn(reveal bool) int {
	if f.Type == FieldSelect {
		return 0
	}
	if f.Masked && !reveal {
		return f.editor.Cursor()
	}
	runes := []rune(f.editor.Text())
	return runewidth.StringWidth(string(runes[:f.editor.Cursor()]))
}

// cycle advances a select field by delta, wrapping.
func (f *Field) cycle(delta int) {
	if len(f.options) == 0 {
		return
	}
	f.selected = (f.selected + delta + len(f.options)) % len(f.options)
}

// HandleKey gives the field one key event. Select fields cycle on
// Left/Right/Space; text fields edit through the shared direct-edit
// handler. Multi-line fields additionally accept Enter as a newline.
func (f *Field) HandleKey(ev key.Event) bool {
	switch f.Type {
	case FieldSelect:
		switch {
		case ev.Key == key.KeyLeft:
			f.cycle(-1)
		case ev.Key == key.KeyRight, ev.IsRune() && ev.Rune == ' ':
			f.cycle(1)
		default:
			return false
		}
		return true
	case FieldMultiLine:
		if ev.IsEnter() {
			f.editor.InsertRune('\n')
			return true
		}
	}
	return buffer.HandleTextKey(f.editor, ev)
}

// Wipe clears the field, zeroing secure buffers.
func (f *Field) Wipe() {
	if f.editor != nil {
		f.editor.Clear()
	}
	f.selected = 0
}
