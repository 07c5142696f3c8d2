package buffer

import (
	"github.com/rivo/uniseg"
)

// Buffer is a single-line text buffer with a cursor and an optional
// selection anchor. Content is held as runes; the cursor is a rune offset
// in [0, Len()]. Every operation clamps; none fail.
type Buffer struct {
	content []rune
	cursor  int
	anchor  int // selection anchor in rune offsets, -1 when no selection
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{anchor: -1}
}

// NewWithText returns a buffer holding s with the cursor at the end.
func NewWithText(s string) *Buffer {
	b := New()
	b.SetText(s)
	return b
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return string(b.content)
}

// SetText replaces the content and moves the cursor to the end.
func (b *Buffer) SetText(s string) {
	b.content = []rune(s)
	b.cursor = len(b.content)
	b.anchor = -1
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// Cursor returns the cursor position as a rune offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped to [0, Len()]. The selection is
// dropped.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
	b.anchor = -1
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

// CursorLeft moves one grapheme cluster left. At offset 0 it is a no-op.
func (b *Buffer) CursorLeft() {
	b.anchor = -1
	b.cursor = prevGrapheme(b.content, b.cursor)
}

// CursorRight moves one grapheme cluster right. At the end it is a no-op.
func (b *Buffer) CursorRight() {
	b.anchor = -1
	b.cursor = nextGrapheme(b.content, b.cursor)
}

// CursorHome moves to offset 0.
func (b *Buffer) CursorHome() {
	b.anchor = -1
	b.cursor = 0
}

// CursorEnd moves past the last rune.
func (b *Buffer) CursorEnd() {
	b.anchor = -1
	b.cursor = len(b.content)
}

// CursorWordLeft moves to the previous word boundary.
func (b *Buffer) CursorWordLeft() {
	b.anchor = -1
	b.cursor = wordBoundaryLeft(b.content, b.cursor)
}

// CursorWordRight moves to the next word start.
func (b *Buffer) CursorWordRight() {
	b.anchor = -1
	b.cursor = wordBoundaryRight(b.content, b.cursor)
}

// Selection returns the selected range as rune offsets [start, end) and
// whether a non-empty selection exists.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if b.anchor < 0 || b.anchor == b.cursor {
		return 0, 0, false
	}
	if b.anchor < b.cursor {
		return b.anchor, b.cursor, true
	}
	return b.cursor, b.anchor, true
}

// ClearSelection drops the selection anchor without moving the cursor.
func (b *Buffer) ClearSelection() {
	b.anchor = -1
}

func (b *Buffer) extend(move func()) {
	anchor := b.anchor
	if anchor < 0 {
		anchor = b.cursor
	}
	move()
	b.anchor = anchor
}

// ExtendLeft moves the cursor one cluster left, extending the selection.
func (b *Buffer) ExtendLeft() { b.extend(b.CursorLeft) }

// ExtendRight moves the cursor one cluster right, extending the selection.
func (b *Buffer) ExtendRight() { b.extend(b.CursorRight) }

// ExtendHome extends the selection to offset 0.
func (b *Buffer) ExtendHome() { b.extend(b.CursorHome) }

// ExtendEnd extends the selection to the end of the content.
func (b *Buffer) ExtendEnd() { b.extend(b.CursorEnd) }

// ExtendWordLeft extends the selection to the previous word boundary.
func (b *Buffer) ExtendWordLeft() { b.extend(b.CursorWordLeft) }

// ExtendWordRight extends the selection to the next word start.
func (b *Buffer) ExtendWordRight() { b.extend(b.CursorWordRight) }

// deleteRange removes [start, end) and places the cursor at start.
func (b *Buffer) deleteRange(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return
	}
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.anchor = -1
}

// deleteSelection removes the selected range if one exists.
func (b *Buffer) deleteSelection() bool {
	start, end, ok := b.Selection()
	if !ok {
		b.anchor = -1
		return false
	}
	b.deleteRange(start, end)
	return true
}

// InsertRune inserts r at the cursor. An active selection is replaced.
func (b *Buffer) InsertRune(r rune) {
	b.deleteSelection()
	b.content = append(b.content[:b.cursor], append([]rune{r}, b.content[b.cursor:]...)...)
	b.cursor++
}

// InsertString inserts s at the cursor. An active selection is replaced.
func (b *Buffer) InsertString(s string) {
	b.deleteSelection()
	runes := []rune(s)
	b.content = append(b.content[:b.cursor], append(runes, b.content[b.cursor:]...)...)
	b.cursor += len(runes)
}

// DeleteBack removes the grapheme cluster before the cursor, or the
// selection if one is active. At offset 0 it is a no-op.
func (b *Buffer) DeleteBack() {
	if b.deleteSelection() {
		return
	}
	b.deleteRange(prevGrapheme(b.content, b.cursor), b.cursor)
}

// DeleteForward removes the grapheme cluster after the cursor, or the
// selection if one is active. At the end it is a no-op.
func (b *Buffer) DeleteForward() {
	if b.deleteSelection() {
		return
	}
	b.deleteRange(b.cursor, nextGrapheme(b.content, b.cursor))
}

// DeleteWordBack removes from the previous word boundary to the cursor.
func (b *Buffer) DeleteWordBack() {
	if b.deleteSelection() {
		return
	}
	b.deleteRange(wordBoundaryLeft(b.content, b.cursor), b.cursor)
}

// DeleteWordForward removes from the cursor to the end of the next word.
func (b *Buffer) DeleteWordForward() {
	if b.deleteSelection() {
		return
	}
	b.deleteRange(b.cursor, wordEndRight(b.content, b.cursor))
}

// Clear removes all content.
func (b *Buffer) Clear() {
	b.content = b.content[:0]
	b.cursor = 0
	b.anchor = -1
}

// ClearToStart removes everything before the cursor.
func (b *Buffer) ClearToStart() {
	b.deleteRange(0, b.cursor)
}

// ClearToEnd removes everything from the cursor to the end.
func (b *Buffer) ClearToEnd() {
	b.deleteRange(b.cursor, len(b.content))
}

// prevGrapheme returns the rune offset of the grapheme cluster boundary
// before pos, or 0.
func prevGrapheme(content []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(content) {
		pos = len(content)
	}

	s := string(content[:pos])
	off, last, state := 0, 0, -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		last = off
		off += len([]rune(cluster))
		s, state = rest, newState
	}
	return last
}

// nextGrapheme returns the rune offset of the grapheme cluster boundary
// after pos, or Len.
func nextGrapheme(content []rune, pos int) int {
	if pos >= len(content) {
		return len(content)
	}
	if pos < 0 {
		pos = 0
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(content[pos:]), -1)
	return pos + len([]rune(cluster))
}
