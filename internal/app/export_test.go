package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/keyvault/internal/widget"
)

func testItems() []Item {
	return []Item{
		{ID: "a", Name: "github", Type: "password", Username: "octocat", Secret: "hunter2", Tags: []string{"dev"}},
		{ID: "b", Name: "bank", Type: "password", Username: "me", Secret: "s3cret"},
	}
}

func TestMarshalExportJSON(t *testing.T) {
	data, err := marshalExport(testItems(), widget.FormatJSON)
	if err != nil {
		t.Fatalf("marshalExport error: %v", err)
	}

	var entries []exportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "github" || entries[0].Password != "hunter2" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestMarshalExportCSV(t *testing.T) {
	data, err := marshalExport(testItems(), widget.FormatCSV)
	if err != nil {
		t.Fatalf("marshalExport error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want header plus 2 rows", len(lines))
	}
	if lines[0] != "name,type,username,password,url,notes" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "github,") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestSealOpenRoundTrip(t *testing.T) {
	payload := []byte(`[{"name":"x"}]`)
	pass := []byte("correct horse")

	sealed, err := sealExport(payload, pass)
	if err != nil {
		t.Fatalf("sealExport error: %v", err)
	}
	if bytes.Contains(sealed, payload) {
		t.Fatal("sealed output contains the plaintext")
	}
	if !bytes.HasPrefix(sealed, []byte(exportMagic)) {
		t.Error("sealed output missing magic prefix")
	}

	opened, err := openExport(sealed, pass)
	if err != nil {
		t.Fatalf("openExport error: %v", err)
	}
	if !bytes.Equal(opened, payload) {
		t.Errorf("round trip = %q, want %q", opened, payload)
	}
}

func TestOpenExportWrongPassphrase(t *testing.T) {
	sealed, err := sealExport([]byte("data"), []byte("right"))
	if err != nil {
		t.Fatalf("sealExport error: %v", err)
	}
	if _, err := openExport(sealed, []byte("wrong")); err == nil {
		t.Error("expected a decryption error")
	}
}

func TestOpenExportRejectsGarbage(t *testing.T) {
	if _, err := openExport([]byte("short"), []byte("pw")); err == nil {
		t.Error("expected an error for a truncated file")
	}
	if _, err := openExport([]byte("XXXXX0123456789abcdef0123456789"), []byte("pw")); err == nil {
		t.Error("expected an error for a bad magic prefix")
	}
}
