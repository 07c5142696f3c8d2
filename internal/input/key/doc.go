// Package key provides key event types and parsing for the input pipeline.
//
// The fundamental types:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: a bitmask of modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press, an immutable value consumed once
//
// # Key Specifications
//
// Key specifications can be written in several formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+s", "Alt+Backspace", "Ctrl+Shift+p"
//   - Vim-style: "<C-s>", "<A-BS>", "<CR>", "<Esc>"
//
// Event.String produces the canonical form keymaps index by, and Parse
// accepts every format above, so bindings may be written in whichever
// style reads best.
package key
