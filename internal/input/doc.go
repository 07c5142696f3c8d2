// Package input defines the semantic actions the key-to-action mapper
// produces and the dispatcher consumes.
//
// An Action is a named command with optional arguments, decoupled from the
// physical key that produced it. Action names are namespaced, e.g.
// "cursor.wordLeft" or "edit.deleteWordBack"; the namespace routes the
// action to its handler.
package input
