package input

// Cursor motions on the active editing buffer.
const (
	ActionCursorLeft      = "cursor.left"
	ActionCursorRight     = "cursor.right"
	ActionCursorHome      = "cursor.home"
	ActionCursorEnd       = "cursor.end"
	ActionCursorWordLeft  = "cursor.wordLeft"
	ActionCursorWordRight = "cursor.wordRight"
)

// Buffer mutations.
const (
	ActionInsertChar        = "edit.insertChar"
	ActionDeleteBack        = "edit.deleteBack"
	ActionDeleteForward     = "edit.deleteForward"
	ActionDeleteWordBack    = "edit.deleteWordBack"
	ActionDeleteWordForward = "edit.deleteWordForward"
	ActionClearLine         = "edit.clearLine"
	ActionClearToStart      = "edit.clearToStart"
	ActionClearToEnd        = "edit.clearToEnd"
)

// Prompt submission and cancellation.
const (
	ActionSubmit = "input.submit"
	ActionCancel = "input.cancel"
)

// Mode switches.
const (
	ActionModeCommand = "mode.command"
	ActionModeSearch  = "mode.search"
	ActionModeHelp    = "mode.help"
	ActionModeLogs    = "mode.logs"
	ActionModeTags    = "mode.tags"
	ActionModeExport  = "mode.export"
)

// Vault list navigation. list.select activates the row under the cursor
// in views that have one, such as the tag filter.
const (
	ActionListUp     = "list.up"
	ActionListDown   = "list.down"
	ActionListTop    = "list.top"
	ActionListBottom = "list.bottom"
	ActionListSelect = "list.select"
)

// Credential verbs.
const (
	ActionCredNew        = "cred.new"
	ActionCredEdit       = "cred.edit"
	ActionCredDelete     = "cred.delete"
	ActionCredCopySecret = "cred.copySecret"
	ActionCredCopyUser   = "cred.copyUser"
	ActionCredShowTOTP   = "cred.showTOTP"
)

// Confirm prompt replies.
const (
	ActionConfirmAccept = "confirm.accept"
	ActionConfirmReject = "confirm.reject"
)

// Application control.
const (
	ActionQuit = "app.quit"
	ActionLock = "app.lock"
)

// knownActions is the closed set of action names a binding may target.
var knownActions = map[string]bool{
	ActionCursorLeft:        true,
	ActionCursorRight:       true,
	ActionCursorHome:        true,
	ActionCursorEnd:         true,
	ActionCursorWordLeft:    true,
	ActionCursorWordRight:   true,
	ActionInsertChar:        true,
	ActionDeleteBack:        true,
	ActionDeleteForward:     true,
	ActionDeleteWordBack:    true,
	ActionDeleteWordForward: true,
	ActionClearLine:         true,
	ActionClearToStart:      true,
	ActionClearToEnd:        true,
	ActionSubmit:            true,
	ActionCancel:            true,
	ActionModeCommand:       true,
	ActionModeSearch:        true,
	ActionModeHelp:          true,
	ActionModeLogs:          true,
	ActionModeTags:          true,
	ActionModeExport:        true,
	ActionListUp:            true,
	ActionListDown:          true,
	ActionListTop:           true,
	ActionListBottom:        true,
	ActionListSelect:        true,
	ActionCredNew:           true,
	ActionCredEdit:          true,
	ActionCredDelete:        true,
	ActionCredCopySecret:    true,
	ActionCredCopyUser:      true,
	ActionCredShowTOTP:      true,
	ActionConfirmAccept:     true,
	ActionConfirmReject:     true,
	ActionQuit:              true,
	ActionLock:              true,
}

// Known reports whether name is a defined action. Keymap loading rejects
// bindings that target anything else.
func Known(name string) bool {
	return knownActions[name]
}
