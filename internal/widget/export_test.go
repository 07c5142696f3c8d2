package widget

import (
	"testing"

	"github.com/dshills/keyvault/internal/input/key"
)

func TestExportFieldCyclingSkipsPassphraseWhenUnencrypted(t *testing.T) {
	d := NewExportDialog()

	// Encrypted: every field is reachable.
	d.Next()
	d.Next()
	if d.Active() != ExportPassphraseField {
		t.Fatalf("Active() = %v, want passphrase", d.Active())
	}

	// Turn encryption off.
	d.Prev()
	d.HandleKey(key.NewRuneEvent(' ', key.ModNone))
	if d.Encrypted() {
		t.Fatal("space did not toggle encryption off")
	}

	d.Next()
	if d.Active() != ExportPathField {
		t.Errorf("Active() = %v, want path (passphrase skipped)", d.Active())
	}
	d.Prev()
	if d.Active() != ExportEncryptField {
		t.Errorf("Active() = %v, want encrypt (passphrase skipped)", d.Active())
	}
}

func TestExportFormatToggle(t *testing.T) {
	d := NewExportDialog()

	d.HandleKey(key.NewKeyEvent(key.KeyRight, key.ModNone))
	if d.Format() != FormatCSV {
		t.Errorf("Format() = %v, want csv", d.Format())
	}
	d.HandleKey(key.NewKeyEvent(key.KeyRight, key.ModNone))
	if d.Format() != FormatJSON {
		t.Errorf("Format() = %v, want json", d.Format())
	}
}

func TestExportPassphraseEditing(t *testing.T) {
	d := NewExportDialog()
	d.Next()
	d.Next()

	for _, r := range "correct horse" {
		d.HandleKey(key.NewRuneEvent(r, key.ModNone))
	}
	if got := d.Passphrase().Text(); got != "correct horse" {
		t.Errorf("Passphrase() = %q, want %q", got, "correct horse")
	}

	d.HandleKey(key.NewKeyEvent(key.KeyBackspace, key.ModCtrl))
	if got := d.Passphrase().Text(); got != "correct " {
		t.Errorf("after Ctrl+Backspace: %q, want %q", got, "correct ")
	}
}

func TestExportDisablingEncryptionWipesPassphrase(t *testing.T) {
	d := NewExportDialog()
	d.Next()
	d.Next()
	for _, r := range "secret" {
		d.HandleKey(key.NewRuneEvent(r, key.ModNone))
	}

	d.Prev()
	d.HandleKey(key.NewRuneEvent(' ', key.ModNone))
	if !d.Passphrase().IsEmpty() {
		t.Error("passphrase survived disabling encryption")
	}
}

func TestExportValidate(t *testing.T) {
	d := NewExportDialog()
	if err := d.Validate(); err == nil {
		t.Error("encrypted dialog without passphrase validated")
	}

	d.Passphrase().InsertString("pw")
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	d.Path().Clear()
	if err := d.Validate(); err == nil {
		t.Error("dialog with empty path validated")
	}
}

func TestExportDoesNotConsumeEscape(t *testing.T) {
	d := NewExportDialog()
	if d.HandleKey(key.NewKeyEvent(key.KeyEscape, key.ModNone)) {
		t.Error("dialog consumed Escape; it must fall through to the pipeline")
	}
}

func TestExportReset(t *testing.T) {
	d := NewExportDialog()
	d.HandleKey(key.NewKeyEvent(key.KeyRight, key.ModNone))
	d.Next()
	d.Next()
	d.HandleKey(key.NewRuneEvent('x', key.ModNone))

	d.Reset()
	if d.Format() != FormatJSON || !d.Encrypted() || d.Active() != ExportFormatField {
		t.Error("Reset did not restore defaults")
	}
	if !d.Passphrase().IsEmpty() {
		t.Error("Reset did not wipe the passphrase")
	}
}
