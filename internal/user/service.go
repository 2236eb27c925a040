package user

import (
	"context"
)

// Service provides user-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new account. The password must already be hashed.
// Registration never grants staff; that flag is set out of band.
func (s *Service) Register(ctx context.Context, u User) (User, error) {
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// GetByUsername returns an account by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// GetByID returns an account by id.
func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}
