package key

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('w', ModCtrl), "Ctrl+w"},
		{NewRuneEvent('b', ModCtrl|ModAlt), "Ctrl+Alt+b"},
		{NewKeyEvent(KeyEnter, ModNone), "Enter"},
		{NewKeyEvent(KeyBackspace, ModAlt), "Alt+Backspace"},
		{NewKeyEvent(KeyLeft, ModShift), "Shift+Left"},
		{NewKeyEvent(KeyRight, ModAlt|ModShift), "Alt+Shift+Right"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventIsRune(t *testing.T) {
	if !NewRuneEvent('x', ModNone).IsRune() {
		t.Error("rune event IsRune() = false")
	}
	if NewKeyEvent(KeyEnter, ModNone).IsRune() {
		t.Error("Enter IsRune() = true")
	}
	if (Event{Key: KeyRune}).IsRune() {
		t.Error("zero-rune event IsRune() = true")
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"plain rune", NewRuneEvent('a', ModNone), false},
		{"shifted rune", NewRuneEvent('A', ModShift), false},
		{"ctrl rune", NewRuneEvent('a', ModCtrl), true},
		{"alt rune", NewRuneEvent('a', ModAlt), true},
		{"plain special", NewKeyEvent(KeyLeft, ModNone), false},
		{"shift special", NewKeyEvent(KeyLeft, ModShift), true},
	}

	for _, tt := range tests {
		if got := tt.event.IsModified(); got != tt.want {
			t.Errorf("%s: IsModified() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('a', ModCtrl)
	b := NewRuneEvent('a', ModCtrl)
	c := NewRuneEvent('a', ModAlt)

	if !a.Equals(b) {
		t.Error("identical events not equal")
	}
	if a.Equals(c) {
		t.Error("events with different modifiers equal")
	}
}

func TestEventMatches(t *testing.T) {
	ev := NewRuneEvent('s', ModCtrl)
	if !ev.Matches("Ctrl+s") {
		t.Error("Ctrl+s event does not match \"Ctrl+s\"")
	}
	if !ev.Matches("<C-s>") {
		t.Error("Ctrl+s event does not match \"<C-s>\"")
	}
	if ev.Matches("Ctrl+a") {
		t.Error("Ctrl+s event matches \"Ctrl+a\"")
	}
	if ev.Matches("not a spec") {
		t.Error("event matches invalid spec")
	}
}

func TestEventWithModifier(t *testing.T) {
	ev := NewKeyEvent(KeyLeft, ModNone).WithModifier(ModShift)
	if !ev.Modifiers.HasShift() {
		t.Error("WithModifier(ModShift) did not add Shift")
	}
	back := ev.WithoutModifier(ModShift)
	if back.Modifiers != ModNone {
		t.Errorf("WithoutModifier(ModShift) modifiers = %v, want ModNone", back.Modifiers)
	}
}
