package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns books matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, error) {
	return s.repo.List(ctx, q)
}

// GetByID returns a single book.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new book owned by the actor.
func (s *Service) Create(ctx context.Context, actor Actor, in Input) (Book, error) {
	return s.repo.Create(ctx, in, actor.ID)
}

// Update replaces the writable fields of a book. Returns ErrForbidden
// when the actor is neither the owner nor staff; the record is left
// untouched in that case.
func (s *Service) Update(ctx context.Context, actor Actor, id int64, in Input) (Book, error) {
	owner, err := s.repo.OwnerOf(ctx, id)
	if err != nil {
		return Book{}, err
	}
	if !CanWrite(actor, owner) {
		return Book{}, ErrForbidden
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a book, subject to the same write policy as Update.
func (s *Service) Delete(ctx context.Context, actor Actor, id int64) error {
	owner, err := s.repo.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if !CanWrite(actor, owner) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
