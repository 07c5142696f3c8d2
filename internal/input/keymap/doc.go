// Package keymap translates key events into semantic actions.
//
// A Keymap is a named set of bindings for one mode. Keymaps merge into a
// Table, an immutable resolver whose Resolve method is a pure function of
// (mode, event): no mutation, no I/O, the same inputs always produce the
// same action or the same miss.
//
// Resolution checks the mode's explicit bindings first, then composes
// navigation from three independent axes (direction from the key, Alt for
// word-wise, Shift for selection-extending), then falls back to character
// insertion in text-input modes. Anything still unresolved is a miss the
// dispatcher turns into a no-op.
//
// User keymaps load from JSON files and overlay the defaults by priority.
package keymap
