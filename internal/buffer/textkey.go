package buffer

import "github.com/dshills/keyvault/internal/input/key"

// HandleTextKey applies a single key event to an editor and reports whether
// the event was consumed. It covers every editing key a text field
// understands; mode-level keys (Escape, Enter, Tab) are left to the caller.
//
// This is the direct-edit path form widgets use. The modal pipeline drives
// the same editor operations through its keymap, so a key consumed here
// mutates a buffer identically on both paths.
func HandleTextKey(ed Editor, ev key.Event) bool {
	ctrl := ev.Modifiers.HasCtrl()
	alt := ev.Modifiers.HasAlt()

	switch ev.Key {
	case key.KeyBackspace:
		if ctrl || alt {
			ed.DeleteWordBack()
		} else {
			ed.DeleteBack()
		}
		return true
	case key.KeyDelete:
		if ctrl || alt {
			ed.DeleteWordForward()
		} else {
			ed.DeleteForward()
		}
		return true
	case key.KeyLeft:
		if alt {
			ed.CursorWordLeft()
		} else {
			ed.CursorLeft()
		}
		return true
	case key.KeyRight:
		if alt {
			ed.CursorWordRight()
		} else {
			ed.CursorRight()
		}
		return true
	case key.KeyHome:
		ed.CursorHome()
		return true
	case key.KeyEnd:
		ed.CursorEnd()
		return true
	}

	if ctrl && ev.IsRune() {
		switch ev.Rune {
		case 'a':
			ed.CursorHome()
		case 'e':
			ed.CursorEnd()
		case 'u':
			ed.ClearToStart()
		case 'k':
			ed.ClearToEnd()
		case 'w':
			ed.DeleteWordBack()
		default:
			return false
		}
		return true
	}

	if ev.IsChar() && !ev.IsModified() {
		ed.InsertRune(ev.Rune)
		return true
	}

	return false
}
