package buffer

// Editor is the editing capability surface. Widgets that own their own text
// fields mutate their editors directly through this interface; the modal
// pipeline reaches the same operations through the mode state. Both paths
// produce identical mutations for identical keys.
type Editor interface {
	// Content
	Text() string
	SetText(s string)
	Len() int
	IsEmpty() bool

	// Cursor
	Cursor() int
	SetCursor(pos int)
	CursorLeft()
	CursorRight()
	CursorHome()
	CursorEnd()
	CursorWordLeft()
	CursorWordRight()

	// Mutation
	InsertRune(r rune)
	InsertString(s string)
	DeleteBack()
	DeleteForward()
	DeleteWordBack()
	DeleteWordForward()
	Clear()
	ClearToStart()
	ClearToEnd()
}
