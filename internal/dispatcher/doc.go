// Package dispatcher routes semantic actions to their handlers.
//
// Handlers register by namespace (the action name's prefix before the
// dot). Construction validates that every action the keymap table can
// produce has a handler; a binding to a handlerless action is a startup
// error, never a silent no-op at keypress time.
//
// An unmapped key, by contrast, is a deliberate no-op: HandleKey returns
// a NoOp result and no state changes.
package dispatcher
