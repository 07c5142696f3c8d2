// Package search implements fuzzy subsequence matching for the vault
// filter. A query matches when its runes appear in order in the
// candidate text; scoring prefers consecutive runs, word-boundary hits
// and early starts.
package search
