package relation

import (
	"errors"
)

// ErrNotFound is returned when the target book does not exist.
var ErrNotFound = errors.New("book not found")

// ErrInvalidRate is returned for rate values outside 1..5.
var ErrInvalidRate = errors.New("rate must be between 1 and 5")

// Relation captures one user's interaction with one book. At most one
// row exists per (user, book) pair; it is created lazily on the first
// like/bookmark/rate and updated in place afterwards.
type Relation struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"user_id"`
	BookID      int64 `json:"book_id"`
	Like        bool  `json:"like"`
	InBookmarks bool  `json:"in_bookmarks"`
	Rate        *int  `json:"rate"`
}

// Patch is a partial relation update; nil fields keep their stored value.
type Patch struct {
	Like        *bool
	InBookmarks *bool
	Rate        *int
}
