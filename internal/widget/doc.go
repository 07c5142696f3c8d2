// Package widget implements the form surfaces that bypass the modal
// pipeline: the credential form and the export dialog.
//
// While one of these is open, it receives key events first and drives its
// fields' editors directly through buffer.Editor and buffer.HandleTextKey.
// The mode state machine is not consulted and no keymap lookup happens;
// only keys a widget declines (Escape, form submission) fall through to
// the pipeline.
package widget
