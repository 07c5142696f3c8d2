package buffer

import "testing"

func TestInsertRune(t *testing.T) {
	b := NewWithText("abcdef")
	b.SetCursor(3)
	b.InsertRune('x')

	if got := b.Text(); got != "abcxdef" {
		t.Errorf("Text() = %q, want %q", got, "abcxdef")
	}
	if got := b.Cursor(); got != 4 {
		t.Errorf("Cursor() = %d, want 4", got)
	}
}

func TestInsertString(t *testing.T) {
	b := NewWithText("ad")
	b.SetCursor(1)
	b.InsertString("bc")

	if got := b.Text(); got != "abcd" {
		t.Errorf("Text() = %q, want %q", got, "abcd")
	}
	if got := b.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
}

func TestDeleteBack(t *testing.T) {
	b := NewWithText("abc")
	b.DeleteBack()

	if got := b.Text(); got != "ab" {
		t.Errorf("Text() = %q, want %q", got, "ab")
	}
	if got := b.Cursor(); got != 2 {
		t.Errorf("Cursor() = %d, want 2", got)
	}
}

func TestDeleteBackAtStartIsNoOp(t *testing.T) {
	b := NewWithText("abc")
	b.SetCursor(0)
	b.DeleteBack()

	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
	if got := b.Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0", got)
	}
}

func TestDeleteForward(t *testing.T) {
	b := NewWithText("abc")
	b.SetCursor(1)
	b.DeleteForward()

	if got := b.Text(); got != "ac" {
		t.Errorf("Text() = %q, want %q", got, "ac")
	}
	if got := b.Cursor(); got != 1 {
		t.Errorf("Cursor() = %d, want 1", got)
	}
}

func TestDeleteForwardAtEndIsNoOp(t *testing.T) {
	b := NewWithText("abc")
	b.DeleteForward()

	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
}

func TestCursorMotionClamps(t *testing.T) {
	b := NewWithText("ab")

	b.CursorRight()
	if got := b.Cursor(); got != 2 {
		t.Errorf("CursorRight at end: Cursor() = %d, want 2", got)
	}

	b.SetCursor(0)
	b.CursorLeft()
	if got := b.Cursor(); got != 0 {
		t.Errorf("CursorLeft at start: Cursor() = %d, want 0", got)
	}

	b.SetCursor(99)
	if got := b.Cursor(); got != 2 {
		t.Errorf("SetCursor(99) = %d, want 2", got)
	}
	b.SetCursor(-5)
	if got := b.Cursor(); got != 0 {
		t.Errorf("SetCursor(-5) = %d, want 0", got)
	}
}

func TestCursorHomeEnd(t *testing.T) {
	b := NewWithText("hello")
	b.SetCursor(2)

	b.CursorEnd()
	if got := b.Cursor(); got != 5 {
		t.Errorf("CursorEnd: Cursor() = %d, want 5", got)
	}

	b.CursorHome()
	if got := b.Cursor(); got != 0 {
		t.Errorf("CursorHome: Cursor() = %d, want 0", got)
	}
}

func TestWordMotionRoundTrip(t *testing.T) {
	b := NewWithText("hello world")

	b.CursorWordLeft()
	if got := b.Cursor(); got != 6 {
		t.Errorf("CursorWordLeft from 11: Cursor() = %d, want 6", got)
	}

	b.CursorWordRight()
	if got := b.Cursor(); got != 11 {
		t.Errorf("CursorWordRight from 6: Cursor() = %d, want 11", got)
	}
}

func TestDeleteWordBack(t *testing.T) {
	b := NewWithText("foo  bar")
	b.DeleteWordBack()

	if got := b.Text(); got != "foo  " {
		t.Errorf("Text() = %q, want %q", got, "foo  ")
	}
	if got := b.Cursor(); got != 5 {
		t.Errorf("Cursor() = %d, want 5", got)
	}
}

func TestDeleteWordBackThroughWhitespace(t *testing.T) {
	b := NewWithText("foo  ")
	b.DeleteWordBack()

	if got := b.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
	if got := b.Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0", got)
	}
}

func TestDeleteWordBackPunctuation(t *testing.T) {
	b := NewWithText("hello!")
	b.DeleteWordBack()

	if got := b.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestDeleteWordForward(t *testing.T) {
	b := NewWithText("foo  bar baz")
	b.SetCursor(3)
	b.DeleteWordForward()

	if got := b.Text(); got != "foo baz" {
		t.Errorf("Text() = %q, want %q", got, "foo baz")
	}
	if got := b.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
}

func TestClearOps(t *testing.T) {
	b := NewWithText("hello world")
	b.SetCursor(5)

	b.ClearToStart()
	if got := b.Text(); got != " world" {
		t.Errorf("ClearToStart: Text() = %q, want %q", got, " world")
	}
	if got := b.Cursor(); got != 0 {
		t.Errorf("ClearToStart: Cursor() = %d, want 0", got)
	}

	b.SetText("hello world")
	b.SetCursor(5)
	b.ClearToEnd()
	if got := b.Text(); got != "hello" {
		t.Errorf("ClearToEnd: Text() = %q, want %q", got, "hello")
	}

	b.Clear()
	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Errorf("Clear: Text() = %q, Cursor() = %d", b.Text(), b.Cursor())
	}
}

func TestUnicodeRuneOffsets(t *testing.T) {
	b := NewWithText("héllo")
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5 runes", got)
	}

	b.SetCursor(2)
	b.InsertRune('x')
	if got := b.Text(); got != "héxllo" {
		t.Errorf("Text() = %q, want %q", got, "héxllo")
	}
}

func TestGraphemeClusterMotion(t *testing.T) {
	// "e" followed by a combining acute accent is one cluster of two runes.
	b := NewWithText("aéb")

	b.SetCursor(0)
	b.CursorRight()
	if got := b.Cursor(); got != 1 {
		t.Errorf("CursorRight over 'a': Cursor() = %d, want 1", got)
	}
	b.CursorRight()
	if got := b.Cursor(); got != 3 {
		t.Errorf("CursorRight over cluster: Cursor() = %d, want 3", got)
	}

	b.CursorLeft()
	if got := b.Cursor(); got != 1 {
		t.Errorf("CursorLeft over cluster: Cursor() = %d, want 1", got)
	}
}

func TestDeleteBackRemovesWholeCluster(t *testing.T) {
	b := NewWithText("aé")
	b.DeleteBack()

	if got := b.Text(); got != "a" {
		t.Errorf("Text() = %q, want %q", got, "a")
	}
	if got := b.Cursor(); got != 1 {
		t.Errorf("Cursor() = %d, want 1", got)
	}
}

func TestSelectionExtend(t *testing.T) {
	b := NewWithText("hello")
	b.SetCursor(2)

	b.ExtendRight()
	b.ExtendRight()
	start, end, ok := b.Selection()
	if !ok || start != 2 || end != 4 {
		t.Fatalf("Selection() = (%d, %d, %v), want (2, 4, true)", start, end, ok)
	}

	// A plain motion drops the selection.
	b.CursorLeft()
	if _, _, ok := b.Selection(); ok {
		t.Error("selection survived a plain motion")
	}
}

func TestSelectionReplacedByInsert(t *testing.T) {
	b := NewWithText("hello")
	b.SetCursor(1)
	b.ExtendRight()
	b.ExtendRight()
	b.ExtendRight()
	b.InsertRune('X')

	if got := b.Text(); got != "hXo" {
		t.Errorf("Text() = %q, want %q", got, "hXo")
	}
	if got := b.Cursor(); got != 2 {
		t.Errorf("Cursor() = %d, want 2", got)
	}
}

func TestSelectionDeletedByBackspace(t *testing.T) {
	b := NewWithText("hello world")
	b.CursorHome()
	b.ExtendWordRight()
	b.DeleteBack()

	if got := b.Text(); got != "world" {
		t.Errorf("Text() = %q, want %q", got, "world")
	}
	if got := b.Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0", got)
	}
}

func TestSetTextMovesCursorToEnd(t *testing.T) {
	b := New()
	b.SetText("abc")
	if got := b.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
}
