// Package buffer implements the single-line text editing primitive behind
// every text-input surface: the command line, the search prompt, and each
// form field.
//
// Buffer holds content as runes with a cursor expressed as a rune offset.
// The cursor invariant 0 <= cursor <= Len() holds after every operation;
// operations clamp at the extremes and never fail. Cursor motion steps by
// grapheme cluster, so combining marks and emoji are never split.
//
// Editor is the capability surface widgets program against. SecureBuffer is
// the Editor used for secrets; it overwrites discarded content with zeros.
package buffer
