package core

import "strings"

// Filter returns the subsequence of notes whose title or content contains
// the term, case-insensitively. An empty (or all-whitespace) term returns
// the input unchanged. Order is preserved from the source list, so results
// stay most-recent-first.
//
// Both the compact list filter and the expanded search view go through this
// single predicate so their behavior never diverges.
func Filter(term string, notes []*Note) []*Note {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return notes
	}

	var matched []*Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) {
			matched = append(matched, n)
		}
	}
	return matched
}
