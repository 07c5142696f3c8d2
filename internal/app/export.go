package app

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dshills/keyvault/internal/widget"
)

// Encrypted export file layout: magic, then salt, then nonce, then the
// AES-GCM sealed payload.
const (
	exportMagic      = "KVLT1"
	exportSaltLen    = 16
	exportPBKDF2Iter = 600000
)

// exportEntry is the serialized form of one credential.
type exportEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password,omitempty"`
	URL      string   `json:"url,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// writeExport serializes the vault in the dialog's format and writes it
// to the dialog's path, sealing it with the passphrase when encryption
// is on.
func writeExport(path string, items []Item, dialog *widget.ExportDialog) error {
	payload, err := marshalExport(items, dialog.Format())
	if err != nil {
		return err
	}

	if dialog.Encrypted() {
		payload, err = sealExport(payload, []byte(dialog.Passphrase().Text()))
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func marshalExport(items []Item, format widget.ExportFormat) ([]byte, error) {
	entries := make([]exportEntry, len(items))
	for i, it := range items {
		entries[i] = exportEntry{
			ID:       it.ID,
			Name:     it.Name,
			Type:     it.Type,
			Username: it.Username,
			Password: it.Secret,
			URL:      it.URL,
			Tags:     it.Tags,
			Notes:    it.Notes,
		}
	}

	switch format {
	case widget.FormatCSV:
		return marshalCSV(entries)
	default:
		return json.MarshalIndent(entries, "", "  ")
	}
}

func marshalCSV(entries []exportEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "type", "username", "password", "url", "notes"}); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range entries {
		row := []string{e.Name, e.Type, e.Username, e.Password, e.URL, e.Notes}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// sealExport encrypts the payload with AES-256-GCM under a PBKDF2
// derived key.
func sealExport(payload, passphrase []byte) ([]byte, error) {
	salt := make([]byte, exportSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	key := pbkdf2.Key(passphrase, salt, exportPBKDF2Iter, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	out := make([]byte, 0, len(exportMagic)+len(salt)+len(nonce)+len(payload)+gcm.Overhead())
	out = append(out, exportMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, payload, nil), nil
}

// openExport reverses sealExport. Import flows and tests use it.
func openExport(data, passphrase []byte) ([]byte, error) {
	if len(data) < len(exportMagic)+exportSaltLen {
		return nil, fmt.Errorf("export file too short")
	}
	if string(data[:len(exportMagic)]) != exportMagic {
		return nil, fmt.Errorf("not an encrypted export file")
	}
	data = data[len(exportMagic):]

	salt := data[:exportSaltLen]
	data = data[exportSaltLen:]

	key := pbkdf2.Key(passphrase, salt, exportPBKDF2Iter, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	if len(data) < gcm.NonceSize() {
		return nil, fmt.Errorf("export file too short")
	}

	nonce := data[:gcm.NonceSize()]
	payload, err := gcm.Open(nil, nonce, data[gcm.NonceSize():], nil)
	if err != nil {
		return nil, fmt.Errorf("decrypting export: %w", err)
	}
	return payload, nil
}
