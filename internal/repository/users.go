// Package repository provides persistence implementations for the gallery
// services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronov/photoboard/internal/models"
)

// PostgresUserRepository implements user persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a repository using the provided *sql.DB.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// GetUserByID fetches a user by id. Returns sql.ErrNoRows when absent.
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, about, avatar FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.About, &u.Avatar)
	if err != nil {
		return models.User{}, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// UpdateProfile stores a new display name and bio and returns the updated row.
func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id, name, about string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
		UPDATE users SET name = $2, about = $3 WHERE id = $1
		RETURNING id, name, about, avatar
	`, id, name, about).Scan(&u.ID, &u.Name, &u.About, &u.Avatar)
	if err != nil {
		return models.User{}, fmt.Errorf("UpdateProfile: %w", err)
	}
	return u, nil
}

// UpdateAvatar stores a new avatar URL and returns the updated row.
func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
		UPDATE users SET avatar = $2 WHERE id = $1
		RETURNING id, name, about, avatar
	`, id, avatar).Scan(&u.ID, &u.Name, &u.About, &u.Avatar)
	if err != nil {
		return models.User{}, fmt.Errorf("UpdateAvatar: %w", err)
	}
	return u, nil
}

// UserIDByToken resolves an authorization token to a user id. Returns
// sql.ErrNoRows for unknown tokens.
func (r *PostgresUserRepository) UserIDByToken(ctx context.Context, token string) (string, error) {
	var id string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM users WHERE token = $1
	`, token).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("UserIDByToken: %w", err)
	}
	return id, nil
}
