package input

import "strings"

// Args holds arguments for an action.
type Args struct {
	// Text carries the character for edit.insertChar.
	Text string

	// Count is a repeat count; zero means one.
	Count int

	// Extend marks a cursor motion as selection-extending.
	Extend bool
}

// Action is a command to be executed by the dispatcher. It carries no
// reference to the key event that produced it.
type Action struct {
	// Name is the namespaced command identifier, e.g. "cursor.wordLeft".
	Name string

	// Args contains command-specific arguments.
	Args Args
}

// New returns an action with no arguments.
func New(name string) Action {
	return Action{Name: name}
}

// Namespace returns the portion of the name before the first dot, or the
// whole name if there is none.
func (a Action) Namespace() string {
	if i := strings.IndexByte(a.Name, '.'); i >= 0 {
		return a.Name[:i]
	}
	return a.Name
}

// WithText returns a copy carrying the given text argument.
func (a Action) WithText(text string) Action {
	a.Args.Text = text
	return a
}

// WithExtend returns a copy marked as selection-extending.
func (a Action) WithExtend() Action {
	a.Args.Extend = true
	return a
}
