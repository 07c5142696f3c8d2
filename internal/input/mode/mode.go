package mode

import "fmt"

// Mode identifies an interaction mode. The set is closed: adding a mode
// means extending the transition rules and the keymap defaults as well.
type Mode uint8

const (
	// Normal is the default navigation mode.
	Normal Mode = iota

	// Insert is active while the credential form is open.
	Insert

	// Command is the ":" command prompt.
	Command

	// Search is the "/" search prompt.
	Search

	// Confirm is a yes/no prompt for destructive operations.
	Confirm

	// Help shows the key binding reference.
	Help

	// Logs shows the activity log view.
	Logs

	// Tags shows the tag filter view.
	Tags

	// Export is active while the export dialog is open.
	Export
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	case Search:
		return "search"
	case Confirm:
		return "confirm"
	case Help:
		return "help"
	case Logs:
		return "logs"
	case Tags:
		return "tags"
	case Export:
		return "export"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// Indicator returns the statusline tag for the mode.
func (m Mode) Indicator() string {
	switch m {
	case Normal:
		return ""
	case Insert:
		return "-- INSERT --"
	case Command:
		return ":"
	case Search:
		return "/"
	case Confirm:
		return "-- CONFIRM --"
	case Help:
		return "-- HELP --"
	case Logs:
		return "-- LOGS --"
	case Tags:
		return "-- TAGS --"
	case Export:
		return "-- EXPORT --"
	default:
		return ""
	}
}

// IsTextInput returns true for modes that type into the shared line buffer.
func (m Mode) IsTextInput() bool {
	return m == Command || m == Search
}

// PreservesBuffer returns true for modes whose entry keeps the shared
// buffer intact instead of clearing it.
func (m Mode) PreservesBuffer() bool {
	return m == Insert || m == Tags || m == Logs
}

// All lists every mode, for exhaustive iteration in validation and tests.
func All() []Mode {
	return []Mode{Normal, Insert, Command, Search, Confirm, Help, Logs, Tags, Export}
}

// FromName returns the mode with the given lowercase name.
func FromName(name string) (Mode, error) {
	for _, m := range All() {
		if m.String() == name {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("unknown mode %q", name)
}
