// Package service provides the gallery's business logic for users and cards,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avoronov/photoboard/internal/models"
)

// UserRepository defines the persistence operations needed by the UserService.
type UserRepository interface {
	// GetUserByID fetches a user by id.
	GetUserByID(ctx context.Context, id string) (models.User, error)
	// UpdateProfile stores a new display name and bio, returning the updated user.
	UpdateProfile(ctx context.Context, id, name, about string) (models.User, error)
	// UpdateAvatar stores a new avatar URL, returning the updated user.
	UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error)
}

// UserService implements profile operations.
type UserService struct {
	// repo is the underlying persistence repository.
	repo UserRepository
}

// NewUserService constructs a UserService with the provided UserRepository.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Get returns the user with the given id, or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// UpdateProfile stores a new display name and bio for the user.
func (s *UserService) UpdateProfile(ctx context.Context, id, name, about string) (models.User, error) {
	u, err := s.repo.UpdateProfile(ctx, id, name, about)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// UpdateAvatar stores a new avatar URL for the user.
func (s *UserService) UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error) {
	u, err := s.repo.UpdateAvatar(ctx, id, avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
