package book

import (
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrForbidden is returned when the caller may not mutate a book.
var ErrForbidden = errors.New("write access denied")

// Book is the API representation of a catalog entry. Price and Rating
// carry two fractional digits as strings; Rating is nil until at least
// one reader has rated the book.
type Book struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	AuthorName     string   `json:"author_name"`
	Owner          *int64   `json:"owner"`
	OwnerName      string   `json:"owner_name"`
	AnnotatedLikes int      `json:"annotated_likes"`
	Rating         *string  `json:"rating"`
	Readers        []Reader `json:"readers"`
}

// Reader identifies a user that has any relation to a book, in
// relation-creation order.
type Reader struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Input carries the writable fields of a book.
type Input struct {
	Name       string
	Price      string
	AuthorName string
}

// Query defines filters and ordering for listing books.
type Query struct {
	Price    string // exact match, e.g. "55"
	Search   string // substring over name and author_name
	Ordering string // "price" or "-price"; anything else falls back to id
}
