package question

import "errors"

// ErrNotFound is returned by stores when no question matches a lookup.
var ErrNotFound = errors.New("question not found")

// Question is a single trivia entry. Category is a plain integer tag; it is
// never validated against the category table.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateParams carries the four required fields for a new question.
type CreateParams struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// ListResult is a page of the full catalog plus the category types the
// frontend renders next to it.
type ListResult struct {
	Questions     []Question
	Total         int
	CategoryTypes []string
}

// SearchResult is a page of matches; Total counts every match, not just the
// returned page.
type SearchResult struct {
	Questions     []Question
	Total         int
	CategoryTypes []string
}

// CreateResult is the new id plus the refreshed, paginated catalog.
type CreateResult struct {
	Created   int64
	Questions []Question
	Total     int
}

// ByCategoryResult is a page of one category's questions.
type ByCategoryResult struct {
	Questions []Question
	Total     int
}
