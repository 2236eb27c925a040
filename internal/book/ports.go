package book

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, in Input, ownerID int64) (Book, error)
	Update(ctx context.Context, id int64, in Input) (Book, error)
	Delete(ctx context.Context, id int64) error
	OwnerOf(ctx context.Context, id int64) (*int64, error)
}
