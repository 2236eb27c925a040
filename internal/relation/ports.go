package relation

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=relation

import (
	"context"
)

// Repository defines the contract for relation storage. Upsert writes
// the relation and recomputes the owning book's cached rating within
// one transaction, so callers observe the new rating as soon as the
// write returns.
type Repository interface {
	Upsert(ctx context.Context, userID, bookID int64, p Patch) (Relation, error)
}
