package mode

import "github.com/dshills/keyvault/internal/buffer"

// ChangeFunc is called after a mode transition with the old and new mode.
type ChangeFunc func(from, to Mode)

// State is the modal state machine: the current mode plus the shared line
// buffer the text-input modes type into.
type State struct {
	mode     Mode
	buf      *buffer.Buffer
	onChange ChangeFunc
}

// NewState returns a State in Normal mode with an empty buffer.
func NewState() *State {
	return &State{mode: Normal, buf: buffer.New()}
}

// OnChange registers a callback invoked after every mode transition.
func (s *State) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Is returns true if the current mode is m.
func (s *State) Is(m Mode) bool {
	return s.mode == m
}

// Buffer returns the shared line buffer.
func (s *State) Buffer() *buffer.Buffer {
	return s.buf
}

// Set transitions to m. The shared buffer is cleared unless the target mode
// preserves it; see Mode.PreservesBuffer.
func (s *State) Set(m Mode) {
	from := s.mode
	s.mode = m
	if !m.PreservesBuffer() {
		s.buf.Clear()
	}
	if s.onChange != nil && from != m {
		s.onChange(from, m)
	}
}

// Cancel returns to Normal, discarding any uncommitted prompt input.
func (s *State) Cancel() {
	s.Set(Normal)
}

// Submit returns the prompt content and transitions back to Normal. The
// buffer is cleared by the transition; the caller owns the returned text.
func (s *State) Submit() string {
	text := s.buf.Text()
	s.Set(Normal)
	return text
}

// Indicator returns the statusline tag for the current mode.
func (s *State) Indicator() string {
	return s.mode.Indicator()
}
