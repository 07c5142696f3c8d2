package keymap

import (
	"testing"

	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/key"
	"github.com/dshills/keyvault/internal/input/mode"
)

func defaultTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(Defaults()...)
	if err != nil {
		t.Fatalf("NewTable(Defaults()) error = %v", err)
	}
	return table
}

func TestResolveNormalMode(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		event key.Event
		want  string
	}{
		{key.NewRuneEvent(':', key.ModNone), input.ActionModeCommand},
		{key.NewRuneEvent('/', key.ModNone), input.ActionModeSearch},
		{key.NewRuneEvent('q', key.ModNone), input.ActionQuit},
		{key.NewRuneEvent('j', key.ModNone), input.ActionListDown},
		{key.NewRuneEvent('G', key.ModShift), input.ActionListBottom},
		{key.NewKeyEvent(key.KeyEnter, key.ModNone), input.ActionCredEdit},
		{key.NewRuneEvent('l', key.ModCtrl), input.ActionLock},
	}

	for _, tt := range tests {
		got, ok := table.Resolve(mode.Normal, tt.event)
		if !ok {
			t.Errorf("Resolve(normal, %v) missed, want %s", tt.event, tt.want)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("Resolve(normal, %v) = %s, want %s", tt.event, got.Name, tt.want)
		}
	}
}

func TestResolveUnmappedMisses(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		mode  mode.Mode
		event key.Event
	}{
		{mode.Normal, key.NewKeyEvent(key.KeyF5, key.ModNone)},
		{mode.Normal, key.NewRuneEvent('z', key.ModNone)},
		{mode.Command, key.NewKeyEvent(key.KeyF5, key.ModNone)},
		{mode.Command, key.NewRuneEvent('z', key.ModCtrl)},
		{mode.Help, key.NewRuneEvent('x', key.ModNone)},
	}

	for _, tt := range tests {
		if a, ok := table.Resolve(tt.mode, tt.event); ok {
			t.Errorf("Resolve(%s, %v) = %s, want miss", tt.mode, tt.event, a.Name)
		}
	}
}

func TestResolveTextInputInsertsRunes(t *testing.T) {
	table := defaultTable(t)

	for _, m := range []mode.Mode{mode.Command, mode.Search} {
		a, ok := table.Resolve(m, key.NewRuneEvent('x', key.ModNone))
		if !ok || a.Name != input.ActionInsertChar {
			t.Fatalf("Resolve(%s, 'x') = (%s, %v), want insertChar", m, a.Name, ok)
		}
		if a.Args.Text != "x" {
			t.Errorf("insertChar text = %q, want %q", a.Args.Text, "x")
		}
	}

	// Normal mode has no insert fallback.
	if _, ok := table.Resolve(mode.Normal, key.NewRuneEvent('z', key.ModNone)); ok {
		t.Error("normal mode resolved an unbound rune")
	}
}

func TestResolveMotionAxes(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		event      key.Event
		want       string
		wantExtend bool
	}{
		{key.NewKeyEvent(key.KeyLeft, key.ModNone), input.ActionCursorLeft, false},
		{key.NewKeyEvent(key.KeyRight, key.ModNone), input.ActionCursorRight, false},
		{key.NewKeyEvent(key.KeyLeft, key.ModAlt), input.ActionCursorWordLeft, false},
		{key.NewKeyEvent(key.KeyRight, key.ModAlt), input.ActionCursorWordRight, false},
		{key.NewKeyEvent(key.KeyLeft, key.ModCtrl), input.ActionCursorLeft, false},
		{key.NewKeyEvent(key.KeyRight, key.ModCtrl), input.ActionCursorRight, false},
		{key.NewKeyEvent(key.KeyLeft, key.ModShift), input.ActionCursorLeft, true},
		{key.NewKeyEvent(key.KeyRight, key.ModAlt|key.ModShift), input.ActionCursorWordRight, true},
		{key.NewKeyEvent(key.KeyHome, key.ModNone), input.ActionCursorHome, false},
		{key.NewKeyEvent(key.KeyEnd, key.ModShift), input.ActionCursorEnd, true},
	}

	for _, tt := range tests {
		got, ok := table.Resolve(mode.Command, tt.event)
		if !ok {
			t.Errorf("Resolve(command, %v) missed", tt.event)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("Resolve(command, %v) = %s, want %s", tt.event, got.Name, tt.want)
		}
		if got.Args.Extend != tt.wantExtend {
			t.Errorf("Resolve(command, %v) extend = %v, want %v", tt.event, got.Args.Extend, tt.wantExtend)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	table := defaultTable(t)
	ev := key.NewRuneEvent(':', key.ModNone)

	first, ok1 := table.Resolve(mode.Normal, ev)
	second, ok2 := table.Resolve(mode.Normal, ev)

	if ok1 != ok2 || first != second {
		t.Errorf("repeated Resolve disagreed: (%v, %v) vs (%v, %v)", first, ok1, second, ok2)
	}
}

func TestOverlayPriorityWins(t *testing.T) {
	user := New("user", mode.Normal).WithPriority(10).WithSource("user")
	user.Add("q", input.ActionModeHelp)

	table, err := NewTable(append(Defaults(), user)...)
	if err != nil {
		t.Fatalf("NewTable error = %v", err)
	}

	a, ok := table.Resolve(mode.Normal, key.NewRuneEvent('q', key.ModNone))
	if !ok || a.Name != input.ActionModeHelp {
		t.Errorf("Resolve(normal, 'q') = (%s, %v), want overlay action", a.Name, ok)
	}

	// Order must not matter.
	table2, err := NewTable(append([]*Keymap{user}, Defaults()...)...)
	if err != nil {
		t.Fatalf("NewTable error = %v", err)
	}
	a2, _ := table2.Resolve(mode.Normal, key.NewRuneEvent('q', key.ModNone))
	if a2.Name != a.Name {
		t.Errorf("merge order changed resolution: %s vs %s", a2.Name, a.Name)
	}
}

func TestNewTableRejectsInvalidBinding(t *testing.T) {
	bad := New("bad", mode.Normal).Add("NotAKey", input.ActionQuit)
	if _, err := NewTable(bad); err == nil {
		t.Error("NewTable accepted an unparseable binding")
	}

	empty := New("empty", mode.Normal).Add("q", "")
	if _, err := NewTable(empty); err == nil {
		t.Error("NewTable accepted an empty action")
	}
}

func TestActionsIncludesRuleGenerated(t *testing.T) {
	table := defaultTable(t)
	actions := table.Actions()

	for _, want := range []string{
		input.ActionInsertChar,
		input.ActionCursorWordLeft,
		input.ActionCursorWordRight,
		input.ActionQuit,
		input.ActionSubmit,
		input.ActionConfirmAccept,
	} {
		if !actions[want] {
			t.Errorf("Actions() missing %s", want)
		}
	}
}
