package category

import "errors"

// ErrNotFound is returned by stores when no category matches a lookup.
var ErrNotFound = errors.New("category not found")

// Category is a display grouping for questions. Questions reference a
// category by id only; nothing enforces that the id resolves.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CreateResult carries the outcome of a create: the new id plus the full
// refreshed catalog, so clients can repaint their category list in one trip.
type CreateResult struct {
	Created    int64
	Categories []Category
	Total      int
}
