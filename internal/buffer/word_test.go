package buffer

import "testing"

func TestRuneClass(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{' ', classWhitespace},
		{'\t', classWhitespace},
		{'a', classWord},
		{'Z', classWord},
		{'7', classWord},
		{'_', classWord},
		{'é', classWord},
		{'.', classPunct},
		{'!', classPunct},
		{'/', classPunct},
	}

	for _, tt := range tests {
		if got := runeClass(tt.r); got != tt.want {
			t.Errorf("runeClass(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestWordBoundaryLeft(t *testing.T) {
	tests := []struct {
		text string
		from int
		want int
	}{
		{"hello world", 11, 6},
		{"foo  bar", 8, 5},
		{"foo  ", 5, 0},
		{"hello!", 6, 0},
		{"a.b", 3, 2},
		{"", 0, 0},
		{"word", 0, 0},
		{"  ", 2, 0},
		{"path/to", 7, 5},
		{"path/", 5, 0},
	}

	for _, tt := range tests {
		got := wordBoundaryLeft([]rune(tt.text), tt.from)
		if got != tt.want {
			t.Errorf("wordBoundaryLeft(%q, %d) = %d, want %d", tt.text, tt.from, got, tt.want)
		}
	}
}

func TestWordBoundaryRight(t *testing.T) {
	tests := []struct {
		text string
		from int
		want int
	}{
		{"hello world", 6, 11},
		{"hello world", 0, 6},
		{"foo  bar", 0, 5},
		{"", 0, 0},
		{"word", 4, 4},
		{"a.b", 0, 1},
		{"  x", 0, 2},
	}

	for _, tt := range tests {
		got := wordBoundaryRight([]rune(tt.text), tt.from)
		if got != tt.want {
			t.Errorf("wordBoundaryRight(%q, %d) = %d, want %d", tt.text, tt.from, got, tt.want)
		}
	}
}

func TestWordEndRight(t *testing.T) {
	tests := []struct {
		text string
		from int
		want int
	}{
		{"foo  bar baz", 3, 8},
		{"hello", 0, 5},
		{"  !x", 0, 4},
		{"", 0, 0},
		{"x", 1, 1},
	}

	for _, tt := range tests {
		got := wordEndRight([]rune(tt.text), tt.from)
		if got != tt.want {
			t.Errorf("wordEndRight(%q, %d) = %d, want %d", tt.text, tt.from, got, tt.want)
		}
	}
}
