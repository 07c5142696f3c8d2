// Package term adapts the tcell terminal backend to the input pipeline.
//
// Terminal owns the screen lifecycle and converts raw tcell key events
// into key.Event values. Everything mode- or buffer-aware lives above
// this package; nothing here interprets a key.
package term
