package keymap

import (
	"fmt"

	"github.com/dshills/keyvault/internal/input"
	"github.com/dshills/keyvault/internal/input/key"
	"github.com/dshills/keyvault/internal/input/mode"
)

// entry records a bound action with the priority of the keymap it came
// from, so overlays can win without ordering games.
type entry struct {
	action   input.Action
	priority int
	source   string
}

// Table is the immutable key-to-action resolver. Build one with NewTable;
// it has no setters, and Resolve is a pure function of (mode, event).
type Table struct {
	modes map[mode.Mode]map[string]entry
}

// NewTable merges keymaps into a resolver. Every keymap is validated;
// when two keymaps bind the same key in the same mode, the higher
// priority wins.
func NewTable(keymaps ...*Keymap) (*Table, error) {
	t := &Table{modes: make(map[mode.Mode]map[string]entry)}

	for _, km := range keymaps {
		if err := km.Validate(); err != nil {
			return nil, err
		}
		binds := t.modes[km.Mode]
		if binds == nil {
			binds = make(map[string]entry)
			t.modes[km.Mode] = binds
		}
		for _, b := range km.Bindings {
			ev, err := b.Parse()
			if err != nil {
				return nil, fmt.Errorf("keymap %q: %w", km.Name, err)
			}
			k := ev.String()
			if existing, ok := binds[k]; ok && existing.priority > km.Priority {
				continue
			}
			binds[k] = entry{action: b.ToAction(), priority: km.Priority, source: km.Source}
		}
	}
	return t, nil
}

// Resolve maps a key event in a mode to an action. A false return is an
// explicit miss: the event is unmapped and must not change any state.
func (t *Table) Resolve(m mode.Mode, ev key.Event) (input.Action, bool) {
	if binds := t.modes[m]; binds != nil {
		if e, ok := binds[ev.String()]; ok {
			return e.action, true
		}
	}

	if m.IsTextInput() {
		if a, ok := motionFor(ev); ok {
			return a, true
		}
		if ev.IsChar() && !ev.IsModified() {
			return input.New(input.ActionInsertChar).WithText(string(ev.Rune)), true
		}
	}

	return input.Action{}, false
}

// motionFor composes navigation actions from three independent axes: the
// key gives the direction, Alt upgrades character motion to word motion,
// and Shift marks the motion as selection-extending. The upgrade rule
// must agree with buffer.HandleTextKey so pipeline and direct-edit input
// move cursors identically.
func motionFor(ev key.Event) (input.Action, bool) {
	word := ev.Modifiers.HasAlt()

	var name string
	switch ev.Key {
	case key.KeyLeft:
		name = input.ActionCursorLeft
		if word {
			name = input.ActionCursorWordLeft
		}
	case key.KeyRight:
		name = input.ActionCursorRight
		if word {
			name = input.ActionCursorWordRight
		}
	case key.KeyHome:
		name = input.ActionCursorHome
	case key.KeyEnd:
		name = input.ActionCursorEnd
	default:
		return input.Action{}, false
	}

	a := input.New(name)
	if ev.Modifiers.HasShift() {
		a = a.WithExtend()
	}
	return a, true
}

// Actions returns the set of action names the table can produce, including
// the rule-generated motions and character insertion. The dispatcher checks
// this set against its handlers at startup.
func (t *Table) Actions() map[string]bool {
	names := map[string]bool{
		input.ActionInsertChar:      true,
		input.ActionCursorLeft:      true,
		input.ActionCursorRight:     true,
		input.ActionCursorHome:      true,
		input.ActionCursorEnd:       true,
		input.ActionCursorWordLeft:  true,
		input.ActionCursorWordRight: true,
	}
	for _, binds := range t.modes {
		for _, e := range binds {
			names[e.action.Name] = true
		}
	}
	return names
}

// BindingsFor returns the mode's bound key specs and action names, for the
// help view. Rule-generated motions are not included.
func (t *Table) BindingsFor(m mode.Mode) map[string]string {
	out := make(map[string]string)
	for k, e := range t.modes[m] {
		out[k] = e.action.Name
	}
	return out
}
