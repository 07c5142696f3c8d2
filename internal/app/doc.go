// Package app wires the input pipeline to the vault: it owns the modal
// state, the keymap table, the dispatcher with every action handler, and
// the form and export widgets that bypass the pipeline while open.
package app
