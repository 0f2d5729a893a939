package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/avoronov/photoboard/internal/models"
)

// PostgresCardRepository implements card persistence against PostgreSQL.
// Like sets are stored as text arrays on the card row.
type PostgresCardRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCardRepository creates a repository using the provided *sql.DB.
func NewPostgresCardRepository(db *sql.DB) *PostgresCardRepository {
	return &PostgresCardRepository{DB: db}
}

const cardColumns = `
	c.id, c.name, c.link, c.likes, c.created_at,
	u.id, u.name, u.about, u.avatar
`

func scanCard(row interface{ Scan(...any) error }) (models.Card, error) {
	var c models.Card
	var likes pq.StringArray
	err := row.Scan(
		&c.ID, &c.Name, &c.Link, &likes, &c.CreatedAt,
		&c.Owner.ID, &c.Owner.Name, &c.Owner.About, &c.Owner.Avatar,
	)
	if err != nil {
		return models.Card{}, err
	}
	c.Likes = []string(likes)
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return c, nil
}

// GetCards fetches every card newest-first with its owner expanded.
func (r *PostgresCardRepository) GetCards(ctx context.Context) ([]models.Card, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+cardColumns+`
		FROM cards c
		JOIN users u ON u.id = c.owner_id
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetCards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetCards rows: %w", err)
	}
	return cards, nil
}

// GetCardByID fetches a single card. Returns sql.ErrNoRows when absent.
func (r *PostgresCardRepository) GetCardByID(ctx context.Context, id string) (models.Card, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+cardColumns+`
		FROM cards c
		JOIN users u ON u.id = c.owner_id
		WHERE c.id = $1
	`, id)
	c, err := scanCard(row)
	if err != nil {
		return models.Card{}, fmt.Errorf("GetCardByID: %w", err)
	}
	return c, nil
}

// InsertCard stores a new card row.
func (r *PostgresCardRepository) InsertCard(ctx context.Context, card models.Card) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO cards (id, owner_id, name, link, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, card.ID, card.Owner.ID, card.Name, card.Link, pq.Array(card.Likes), card.CreatedAt)
	if err != nil {
		return fmt.Errorf("InsertCard: %w", err)
	}
	return nil
}

// DeleteCard removes the card row with the given id.
func (r *PostgresCardRepository) DeleteCard(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteCard: %w", err)
	}
	return nil
}

// AddLike appends userID to the card's like set unless it is already there.
func (r *PostgresCardRepository) AddLike(ctx context.Context, cardID, userID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE cards SET likes = array_append(likes, $2)
		WHERE id = $1 AND NOT ($2 = ANY(likes))
	`, cardID, userID)
	if err != nil {
		return fmt.Errorf("AddLike: %w", err)
	}
	return nil
}

// RemoveLike removes userID from the card's like set.
func (r *PostgresCardRepository) RemoveLike(ctx context.Context, cardID, userID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE cards SET likes = array_remove(likes, $2)
		WHERE id = $1
	`, cardID, userID)
	if err != nil {
		return fmt.Errorf("RemoveLike: %w", err)
	}
	return nil
}
