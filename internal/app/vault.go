package app

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/dshills/keyvault/internal/search"
)

// Item is one credential entry in the vault.
type Item struct {
	ID         string
	Name       string
	Type       string
	Username   string
	Secret     string
	URL        string
	Tags       []string
	TOTPSecret string
	Notes      string
}

func newItemID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// filterScore fuzzy-matches the query against the item's name, username,
// URL and tags, returning the best field score.
func (it Item) filterScore(query string) (int, bool) {
	fields := make([]string, 0, 3+len(it.Tags))
	fields = append(fields, it.Name, it.Username, it.URL)
	fields = append(fields, it.Tags...)
	return search.Best(query, fields...)
}

// hasAnyTag reports whether the item carries at least one of the
// selected tags.
func (it Item) hasAnyTag(selected map[string]bool) bool {
	for _, tag := range it.Tags {
		if selected[tag] {
			return true
		}
	}
	return false
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
