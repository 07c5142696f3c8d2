package widget

import (
	"errors"

	"github.com/dshills/keyvault/internal/buffer"
	"github.com/dshills/keyvault/internal/input/key"
)

// ExportFormat selects the export file format.
type ExportFormat uint8

const (
	// FormatJSON exports the vault as JSON.
	FormatJSON ExportFormat = iota

	// FormatCSV exports the vault as CSV.
	FormatCSV
)

// String returns the lowercase format name.
func (f ExportFormat) String() string {
	if f == FormatCSV {
		return "csv"
	}
	return "json"
}

// ExportField identifies the focused row of the export dialog.
type ExportField uint8

const (
	// ExportFormatField cycles the output format.
	ExportFormatField ExportField = iota

	// ExportEncryptField toggles encryption.
	ExportEncryptField

	// ExportPassphraseField edits the passphrase; skipped when
	// encryption is off.
	ExportPassphraseField

	// ExportPathField edits the output path.
	ExportPathField
)

// ExportDialog configures a vault export. Like the credential form it is a
// direct-edit surface: keys reach the passphrase and path editors without
// touching the modal pipeline.
type ExportDialog struct {
	format     ExportFormat
	encrypted  bool
	passphrase *buffer.SecureBuffer
	path       *buffer.Buffer
	active     ExportField
}

// NewExportDialog creates a dialog with encryption on and a default path.
func NewExportDialog() *ExportDialog {
	return &ExportDialog{
		encrypted:  true,
		passphrase: buffer.NewSecure(),
		path:       buffer.NewWithText("keyvault-export.json"),
	}
}

// Format returns the selected format.
func (d *ExportDialog) Format() ExportFormat { return d.format }

// Encrypted returns true when the export will be encrypted.
func (d *ExportDialog) Encrypted() bool { return d.encrypted }

// Passphrase returns the passphrase editor.
func (d *ExportDialog) Passphrase() *buffer.SecureBuffer { return d.passphrase }

// Path returns the output path editor.
func (d *ExportDialog) Path() *buffer.Buffer { return d.path }

// Active returns the focused field.
func (d *ExportDialog) Active() ExportField { return d.active }

// Next focuses the next field, wrapping and skipping the passphrase when
// encryption is off.
func (d *ExportDialog) Next() {
	d.active = d.step(d.active, 1)
}

// Prev focuses the previous field, wrapping and skipping the passphrase
// when encryption is off.
func (d *ExportDialog) Prev() {
	d.active = d.step(d.active, -1)
}

func (d *ExportDialog) step(from ExportField, delta int) ExportField {
	const count = 4
	f := from
	for {
		f = ExportField((int(f) + delta + count) % count)
		if f == ExportPassphraseField && !d.encrypted {
			continue
		}
		return f
	}
}

// HandleKey gives the dialog one key event and reports whether it was
// consumed. Escape and Enter fall through to the caller.
func (d *ExportDialog) HandleKey(ev key.Event) bool {
	switch {
	case ev.Key == key.KeyTab && !ev.Modifiers.HasShift(), ev.Key == key.KeyDown:
		d.Next()
		return true
	case ev.Key == key.KeyBackTab, ev.Key == key.KeyTab && ev.Modifiers.HasShift(), ev.Key == key.KeyUp:
		d.Prev()
		return true
	}

	switch d.active {
	case ExportFormatField:
		if ev.Key == key.KeyLeft || ev.Key == key.KeyRight || (ev.IsRune() && ev.Rune == ' ') {
			if d.format == FormatJSON {
				d.format = FormatCSV
			} else {
				d.format = FormatJSON
			}
			return true
		}
		return false
	case ExportEncryptField:
		if ev.Key == key.KeyLeft || ev.Key == key.KeyRight || (ev.IsRune() && ev.Rune == ' ') {
			d.encrypted = !d.encrypted
			if !d.encrypted {
				d.passphrase.Wipe()
			}
			return true
		}
		return false
	case ExportPassphraseField:
		return buffer.HandleTextKey(d.passphrase, ev)
	case ExportPathField:
		return buffer.HandleTextKey(d.path, ev)
	}
	return false
}

// Validate checks the dialog is ready to export.
func (d *ExportDialog) Validate() error {
	if d.encrypted && d.passphrase.IsEmpty() {
		return errors.New("passphrase is required for an encrypted export")
	}
	if d.path.IsEmpty() {
		return errors.New("output path is required")
	}
	return nil
}

// Reset wipes the passphrase and restores the defaults.
func (d *ExportDialog) Reset() {
	d.passphrase.Wipe()
	d.path.SetText("keyvault-export.json")
	d.format = FormatJSON
	d.encrypted = true
	d.active = ExportFormatField
}
