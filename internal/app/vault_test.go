package app

import (
	"reflect"
	"testing"
)

func TestItemFilterScore(t *testing.T) {
	item := Item{
		Name:     "GitHub",
		Username: "octocat",
		URL:      "https://github.com",
		Tags:     []string{"dev", "work"},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"git", true},
		{"GIT", true},
		{"octo", true},
		{"work", true},
		{"zebra", false},
	}

	for _, tt := range tests {
		if _, got := item.filterScore(tt.query); got != tt.want {
			t.Errorf("filterScore(%q) match = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"dev", []string{"dev"}},
		{"dev, work", []string{"dev", "work"}},
		{" dev ,, work ,", []string{"dev", "work"}},
	}

	for _, tt := range tests {
		if got := splitTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewItemIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newItemID()
		if len(id) != 16 {
			t.Fatalf("len(id) = %d, want 16", len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
