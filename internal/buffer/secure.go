package buffer

// SecureBuffer is an Editor for secret input (passwords, passphrases, TOTP
// seeds). It behaves exactly like Buffer, but overwrites discarded runes
// with zeros so secret fragments do not linger in the backing array after
// edits or on Clear.
//
// Go strings returned by Text() are still immutable copies; callers that
// need the secret should take it once and let it go out of scope.
type SecureBuffer struct {
	buf Buffer
}

// NewSecure returns an empty secure buffer.
func NewSecure() *SecureBuffer {
	return &SecureBuffer{buf: Buffer{anchor: -1}}
}

// scrub zeroes the spare capacity left behind by a shrinking edit.
func (s *SecureBuffer) scrub() {
	spare := s.buf.content[len(s.buf.content):cap(s.buf.content)]
	for i := range spare {
		spare[i] = 0
	}
}

// Wipe zeroes the entire backing array and empties the buffer.
func (s *SecureBuffer) Wipe() {
	full := s.buf.content[:cap(s.buf.content)]
	for i := range full {
		full[i] = 0
	}
	s.buf.content = s.buf.content[:0]
	s.buf.cursor = 0
	s.buf.anchor = -1
}

func (s *SecureBuffer) Text() string { return s.buf.Text() }

func (s *SecureBuffer) SetText(text string) {
	s.Wipe()
	s.buf.SetText(text)
}

func (s *SecureBuffer) Len() int      { return s.buf.Len() }
func (s *SecureBuffer) IsEmpty() bool { return s.buf.IsEmpty() }

func (s *SecureBuffer) Cursor() int        { return s.buf.Cursor() }
func (s *SecureBuffer) SetCursor(pos int)  { s.buf.SetCursor(pos) }
func (s *SecureBuffer) CursorLeft()        { s.buf.CursorLeft() }
func (s *SecureBuffer) CursorRight()       { s.buf.CursorRight() }
func (s *SecureBuffer) CursorHome()        { s.buf.CursorHome() }
func (s *SecureBuffer) CursorEnd()         { s.buf.CursorEnd() }
func (s *SecureBuffer) CursorWordLeft()    { s.buf.CursorWordLeft() }
func (s *SecureBuffer) CursorWordRight()   { s.buf.CursorWordRight() }
func (s *SecureBuffer) InsertRune(r rune)  { s.buf.InsertRune(r) }
func (s *SecureBuffer) InsertString(t string) {
	s.buf.InsertString(t)
}

func (s *SecureBuffer) DeleteBack() {
	s.buf.DeleteBack()
	s.scrub()
}

func (s *SecureBuffer) DeleteForward() {
	s.buf.DeleteForward()
	s.scrub()
}

func (s *SecureBuffer) DeleteWordBack() {
	s.buf.DeleteWordBack()
	s.scrub()
}

func (s *SecureBuffer) DeleteWordForward() {
	s.buf.DeleteWordForward()
	s.scrub()
}

func (s *SecureBuffer) Clear() {
	s.Wipe()
}

func (s *SecureBuffer) ClearToStart() {
	s.buf.ClearToStart()
	s.scrub()
}

func (s *SecureBuffer) ClearToEnd() {
	s.buf.ClearToEnd()
	s.scrub()
}

var _ Editor = (*SecureBuffer)(nil)
var _ Editor = (*Buffer)(nil)
