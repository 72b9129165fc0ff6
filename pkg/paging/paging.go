// Package paging slices ordered result sets into fixed-size pages.
package paging

import "strconv"

// PerPage is the fixed page size for every listing endpoint. It is not
// client-configurable.
const PerPage = 10

// Page returns the sub-sequence of items for a 1-based page number. Pages past
// the end are empty, never an error.
func Page[T any](page int, items []T) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PerPage
	if start > len(items) {
		start = len(items)
	}
	end := start + PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage interprets a raw page query parameter, defaulting to 1 when it is
// absent or unparseable.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
