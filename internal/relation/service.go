package relation

import (
	"context"
)

// Service provides relation business logic.
type Service struct {
	repo Repository
}

// NewService creates a new relation service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Apply upserts the user's relation to a book. Out-of-range rates are
// rejected before anything touches storage.
func (s *Service) Apply(ctx context.Context, userID, bookID int64, p Patch) (Relation, error) {
	if p.Rate != nil && (*p.Rate < 1 || *p.Rate > 5) {
		return Relation{}, ErrInvalidRate
	}
	return s.repo.Upsert(ctx, userID, bookID, p)
}
