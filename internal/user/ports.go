package user

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=user

import (
	"context"
)

// Repository defines the contract for user data storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}
