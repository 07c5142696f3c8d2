package buffer

import "unicode"

// Character classes for word boundary scanning.
const (
	classWhitespace = iota
	classWord
	classPunct
)

func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// wordBoundaryLeft returns the offset a backward word motion lands on,
// starting from from. It skips trailing whitespace, then the run of
// word runes, or for punctuation the punctuation run and any word run
// directly before it.
func wordBoundaryLeft(content []rune, from int) int {
	i := from
	if i > len(content) {
		i = len(content)
	}

	for i > 0 && runeClass(content[i-1]) == classWhitespace {
		i--
	}
	if i == 0 {
		return 0
	}

	switch runeClass(content[i-1]) {
	case classWord:
		for i > 0 && runeClass(content[i-1]) == classWord {
			i--
		}
	case classPunct:
		for i > 0 && runeClass(content[i-1]) == classPunct {
			i--
		}
		for i > 0 && runeClass(content[i-1]) == classWord {
			i--
		}
	}
	return i
}

// wordBoundaryRight returns the offset of the next word start after from:
// the current class run is skipped, then any whitespace after it.
func wordBoundaryRight(content []rune, from int) int {
	i, n := from, len(content)
	if i >= n {
		return n
	}

	c := runeClass(content[i])
	for i < n && runeClass(content[i]) == c {
		i++
	}
	for i < n && runeClass(content[i]) == classWhitespace {
		i++
	}
	return i
}

// wordEndRight returns the offset a forward word deletion extends to. It
// mirrors wordBoundaryLeft: leading whitespace, then the word run, or the
// punctuation run and any word run directly after it.
func wordEndRight(content []rune, from int) int {
	i, n := from, len(content)
	if i >= n {
		return n
	}

	for i < n && runeClass(content[i]) == classWhitespace {
		i++
	}
	if i == n {
		return n
	}

	switch runeClass(content[i]) {
	case classWord:
		for i < n && runeClass(content[i]) == classWord {
			i++
		}
	case classPunct:
		for i < n && runeClass(content[i]) == classPunct {
			i++
		}
		for i < n && runeClass(content[i]) == classWord {
			i++
		}
	}
	return i
}
