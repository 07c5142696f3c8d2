package widget

import (
	"testing"

	"github.com/dshills/keyvault/internal/input/key"
)

func typeString(f *Field, s string) {
	for _, r := range s {
		f.HandleKey(key.NewRuneEvent(r, key.ModNone))
	}
}

func TestTextFieldEditing(t *testing.T) {
	f := NewTextField("Name", true)
	typeString(f, "github")

	if got := f.Value(); got != "github" {
		t.Errorf("Value() = %q, want %q", got, "github")
	}

	f.HandleKey(key.NewKeyEvent(key.KeyBackspace, key.ModNone))
	if got := f.Value(); got != "githu" {
		t.Errorf("Value() = %q, want %q", got, "githu")
	}
}

func TestPasswordFieldMasksDisplay(t *testing.T) {
	f := NewPasswordField("Password", true)
	typeString(f, "hunter2")

	if got := f.Display(false); got != "•••••••" {
		t.Errorf("Display(false) = %q, want bullets", got)
	}
	if got := f.Display(true); got != "hunter2" {
		t.Errorf("Display(true) = %q, want %q", got, "hunter2")
	}
	if got := f.Value(); got != "hunter2" {
		t.Errorf("Value() = %q, want %q", got, "hunter2")
	}
}

func TestSelectFieldCycles(t *testing.T) {
	f := NewSelectField("Type", []string{"password", "api_key", "note"})

	if got := f.Value(); got != "password" {
		t.Fatalf("initial Value() = %q, want %q", got, "password")
	}

	f.HandleKey(key.NewKeyEvent(key.KeyRight, key.ModNone))
	if got := f.Value(); got != "api_key" {
		t.Errorf("after Right: Value() = %q, want %q", got, "api_key")
	}

	f.HandleKey(key.NewKeyEvent(key.KeyLeft, key.ModNone))
	f.HandleKey(key.NewKeyEvent(key.KeyLeft, key.ModNone))
	if got := f.Value(); got != "note" {
		t.Errorf("wrap backward: Value() = %q, want %q", got, "note")
	}

	// Runes other than space are not consumed.
	if f.HandleKey(key.NewRuneEvent('x', key.ModNone)) {
		t.Error("select field consumed a plain rune")
	}
}

func TestSelectFieldSetValue(t *testing.T) {
	f := NewSelectField("Type", CredentialTypes)
	f.SetValue("ssh_key")
	if got := f.Value(); got != "ssh_key" {
		t.Errorf("Value() = %q, want %q", got, "ssh_key")
	}

	f.SetValue("bogus")
	if got := f.Value(); got != "ssh_key" {
		t.Errorf("unknown SetValue changed selection to %q", got)
	}
}

func TestMultiLineFieldAcceptsEnter(t *testing.T) {
	f := NewMultiLineField("Notes")
	typeString(f, "line one")
	f.HandleKey(key.NewKeyEvent(key.KeyEnter, key.ModNone))
	typeString(f, "line two")

	if got := f.Value(); got != "line one\nline two" {
		t.Errorf("Value() = %q, want two lines", got)
	}
}

func TestTextFieldDoesNotConsumeEnter(t *testing.T) {
	f := NewTextField("Name", false)
	if f.HandleKey(key.NewKeyEvent(key.KeyEnter, key.ModNone)) {
		t.Error("text field consumed Enter")
	}
}

func TestCursorColumnUsesDisplayWidth(t *testing.T) {
	f := NewTextField("Name", false)
	f.SetValue("日本a")

	// Cursor sits at the end: two double-width runes plus one narrow.
	if got := f.CursorColumn(false); got != 5 {
		t.Errorf("CursorColumn() = %d, want 5", got)
	}

	f.Editor().CursorLeft()
	if got := f.CursorColumn(false); got != 4 {
		t.Errorf("CursorColumn() after left = %d, want 4", got)
	}
}

func TestMaskedCursorColumn(t *testing.T) {
	f := NewPasswordField("Password", false)
	typeString(f, "日本語")

	// Bullets are single width regardless of the hidden runes.
	if got := f.CursorColumn(false); got != 3 {
		t.Errorf("CursorColumn(false) = %d, want 3", got)
	}
	if got := f.CursorColumn(true); got != 6 {
		t.Errorf("CursorColumn(true) = %d, want 6", got)
	}
}

func TestFieldWipe(t *testing.T) {
	f := NewPasswordField("Password", true)
	typeString(f, "secret")
	f.Wipe()

	if !f.IsEmpty() {
		t.Errorf("after Wipe: Value() = %q, want empty", f.Value())
	}
}
