// Package mode implements the modal state machine.
//
// Mode is a closed enum of interaction modes; State tracks the current mode
// together with the shared line buffer that text-input modes (Command,
// Search) type into. Transitions are total: every mode has a defined exit
// for Escape, and switching modes clears the shared buffer unless the
// target mode is documented to preserve it.
package mode
