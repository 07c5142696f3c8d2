package widget

import (
	"fmt"

	"github.com/dshills/keyvault/internal/input/key"
)

// Credential form field labels. Values() keys off these.
const (
	FieldName       = "Name"
	FieldCredType   = "Type"
	FieldUsername   = "Username"
	FieldPassword   = "Password"
	FieldURL        = "URL"
	FieldTags       = "Tags"
	FieldTOTPSecret = "TOTP Secret"
	FieldNotes      = "Notes"
)

// CredentialTypes are the options of the credential type selector.
var CredentialTypes = []string{"password", "api_key", "ssh_key", "note", "totp"}

// CredentialForm is the add/edit credential dialog. It owns its fields'
// editors and consumes key events directly; the modal pipeline never sees
// a key this form handles.
type CredentialForm struct {
	fields  []*Field
	active  int
	reveal  bool
	editing string // credential ID when editing, empty for a new entry
}

// NewCredentialForm creates the form with the standard field set.
func NewCredentialForm() *CredentialForm {
	return &CredentialForm{
		fields: []*Field{
			NewTextField(FieldName, true),
			NewSelectField(FieldCredType, CredentialTypes),
			NewTextField(FieldUsername, false),
			NewPasswordField(FieldPassword, true),
			NewTextField(FieldURL, false),
			NewTextField(FieldTags, false),
			NewPasswordField(FieldTOTPSecret, false),
			NewMultiLineField(FieldNotes),
		},
	}
}

// Fields returns the form's fields in display order.
func (f *CredentialForm) Fields() []*Field {
	return f.fields
}

// Active returns the focused field.
func (f *CredentialForm) Active() *Field {
	return f.fields[f.active]
}

// ActiveIndex returns the index of the focused field.
func (f *CredentialForm) ActiveIndex() int {
	return f.active
}

// Reveal returns true when masked fields display in the clear.
func (f *CredentialForm) Reveal() bool {
	return f.reveal
}

// Next focuses the next field, wrapping.
func (f *CredentialForm) Next() {
	f.active = (f.active + 1) % len(f.fields)
}

// Prev focuses the previous field, wrapping.
func (f *CredentialForm) Prev() {
	f.active = (f.active - 1 + len(f.fields)) % len(f.fields)
}

// SetEditing marks the form as editing an existing credential.
func (f *CredentialForm) SetEditing(id string) {
	f.editing = id
}

// Editing returns the credential ID being edited, or "" for a new entry.
func (f *CredentialForm) Editing() string {
	return f.editing
}

// HandleKey gives the form one key event and reports whether it was
// consumed. Unconsumed keys (Escape, plain Enter outside the notes
// field) fall through to the modal pipeline.
func (f *CredentialForm) HandleKey(ev key.Event) bool {
	switch {
	case ev.Key == key.KeyTab && !ev.Modifiers.HasShift():
		f.Next()
		return true
	case ev.Key == key.KeyBackTab, ev.Key == key.KeyTab && ev.Modifiers.HasShift():
		f.Prev()
		return true
	case ev.Key == key.KeyDown && f.Active().Type != FieldSelect:
		f.Next()
		return true
	case ev.Key == key.KeyUp && f.Active().Type != FieldSelect:
		f.Prev()
		return true
	case ev.Key == key.KeyRune && ev.Rune == 's' && ev.Modifiers.HasCtrl():
		f.reveal = !f.reveal
		return true
	}
	return f.Active().HandleKey(ev)
}

// Validate checks that every required field is filled.
func (f *CredentialForm) Validate() error {
	for _, fld := range f.fields {
		if fld.Required && fld.IsEmpty() {
			return fmt.Errorf("%s is required", fld.Label)
		}
	}
	return nil
}

// Values returns the form content keyed by field label. The caller owns
// the secret copies.
func (f *CredentialForm) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		out[fld.Label] = fld.Value()
	}
	return out
}

// Reset wipes every field, zeroing the secret buffers, and refocuses the
// first field.
func (f *CredentialForm) Reset() {
	for _, fld := range f.fields {
		fld.Wipe()
	}
	f.active = 0
	f.reveal = false
	f.editing = ""
}
