package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keyvault/internal/input/key"
)

// Terminal wraps a tcell screen: lifecycle, sizing, and conversion of raw
// events into key events.
type Terminal struct {
	mu       sync.Mutex
	screen   tcell.Screen
	onResize func(w, h int)
}

// New opens and initializes the real terminal screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// NewWithScreen wraps an existing screen. Tests use this with tcell's
// simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// OnResize registers a callback for terminal size changes.
func (t *Terminal) OnResize(fn func(w, h int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.onResize = fn
}

// Size returns the current screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollKey blocks until the next key event. Resize events fire the
// registered callback and polling continues. The second return is false
// once the screen has been finalized.
func (t *Terminal) PollKey() (key.Event, bool) {
	for {
		ev := t.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return key.Event{}, false
		case *tcell.EventKey:
			return ConvertKeyEvent(e), true
		case *tcell.EventResize:
			w, h := e.Size()
			t.mu.Lock()
			fn := t.onResize
			t.mu.Unlock()
			if fn != nil {
				fn(w, h)
			}
		}
	}
}

// Clear erases the screen buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// ShowCursor places the terminal cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// Print writes a string starting at (x, y), advancing by display width.
func (t *Terminal) Print(x, y int, s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := tcell.StyleDefault
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// ConvertKeyEvent translates a tcell key event into a key.Event. Ctrl
// combinations arrive from tcell as dedicated key codes and fold back to
// lowercase runes with ModCtrl set.
func ConvertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewKeyEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewKeyEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewKeyEvent(key.KeyTab, mods)
	case tcell.KeyBacktab:
		return key.NewKeyEvent(key.KeyBackTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewKeyEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewKeyEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewKeyEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewKeyEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewKeyEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewKeyEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewKeyEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewKeyEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewKeyEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewKeyEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewKeyEvent(key.KeyRight, mods)
	}

	if f := e.Key(); f >= tcell.KeyF1 && f <= tcell.KeyF12 {
		return key.NewKeyEvent(key.KeyF1+key.Key(f-tcell.KeyF1), mods)
	}

	// tcell reports Ctrl+letter as control codes 1..26. Tab, Enter and
	// Backspace share codes with Ctrl+I/M/H and were handled above.
	if c := e.Key(); c >= tcell.KeyCtrlA && c <= tcell.KeyCtrlZ {
		r := rune('a' + c - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	return key.NewKeyEvent(key.KeyNone, mods)
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
