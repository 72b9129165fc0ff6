package question

import "strings"

// Filter returns every question whose text contains term as a
// case-insensitive substring, preserving input order. Callers decide whether
// a search was requested at all; an empty term is not a valid search.
func Filter(term string, items []Question) []Question {
	term = strings.ToLower(term)
	var matches []Question
	for _, q := range items {
		if strings.Contains(strings.ToLower(q.Question), term) {
			matches = append(matches, q)
		}
	}
	return matches
}
