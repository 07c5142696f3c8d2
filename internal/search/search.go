package search

import "unicode"

// Match reports whether query is a case-insensitive subsequence of text,
// with a score for ranking. Higher scores indicate better matches. An
// empty query matches everything with a zero score.
func Match(query, text string) (int, bool) {
	if query == "" {
		return 0, true
	}

	queryRunes := normalize(query)
	original := []rune(text)
	textRunes := normalize(text)

	matches := subsequence(queryRunes, textRunes)
	if matches == nil {
		return 0, false
	}
	return score(queryRunes, original, textRunes, matches), true
}

// Best returns the highest score of the query against any of the fields.
func Best(query string, fields ...string) (int, bool) {
	best := 0
	found := false
	for _, f := range fields {
		if s, ok := Match(query, f); ok {
			found = true
			if s > best {
				best = s
			}
		}
	}
	return best, found
}

func normalize(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// subsequence greedily matches query runes in order, returning the
// matched indices or nil.
func subsequence(query, text []rune) []int {
	matches := make([]int, 0, len(query))
	ti := 0
	for _, qr := range query {
		found := false
		for ; ti < len(text); ti++ {
			if text[ti] == qr {
				matches = append(matches, ti)
				ti++
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return matches
}

func score(query, original, text []rune, matches []int) int {
	s := 100

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			s += 20
		}
	}

	for _, idx := range matches {
		if isWordBoundary(original, idx) {
			s += 15
		}
	}

	if matches[0] == 0 {
		s += 25
	}

	// Spread-out matches rank below tight ones.
	if len(matches) > 1 {
		gap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		s -= gap * 2
	}
	s -= matches[0]

	if len(text) < 20 {
		s += 20 - len(text)
	}

	if len(text) >= len(query) {
		prefix := true
		for i, qr := range query {
			if text[i] != qr {
				prefix = false
				break
			}
		}
		if prefix {
			s += 50
		}
	}

	if s < 1 {
		s = 1
	}
	return s
}

func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}
	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}
