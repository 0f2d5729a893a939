package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avoronov/photoboard/internal/models"
)

// CardRepository defines the persistence operations needed by the CardService.
type CardRepository interface {
	// GetCards retrieves all cards newest-first, owners expanded.
	GetCards(ctx context.Context) ([]models.Card, error)
	// GetCardByID fetches a single card with its owner and like set.
	GetCardByID(ctx context.Context, id string) (models.Card, error)
	// InsertCard stores a new card.
	InsertCard(ctx context.Context, card models.Card) error
	// DeleteCard removes a card.
	DeleteCard(ctx context.Context, id string) error
	// AddLike puts userID into the card's like set; adding a present id
	// is a no-op.
	AddLike(ctx context.Context, cardID, userID string) error
	// RemoveLike takes userID out of the card's like set; removing an
	// absent id is a no-op.
	RemoveLike(ctx context.Context, cardID, userID string) error
}

// CardService implements card operations: listing, creation, deletion, and
// like-set membership.
type CardService struct {
	repo  CardRepository
	users UserRepository
}

// NewCardService constructs a CardService over the card and user repositories.
func NewCardService(repo CardRepository, users UserRepository) *CardService {
	return &CardService{repo: repo, users: users}
}

// List returns every card, newest first.
func (s *CardService) List(ctx context.Context) ([]models.Card, error) {
	return s.repo.GetCards(ctx)
}

// Create stores a new card owned by ownerID with a generated id and the
// current timestamp, and returns it with the owner expanded.
func (s *CardService) Create(ctx context.Context, ownerID, name, link string) (models.Card, error) {
	owner, err := s.users.GetUserByID(ctx, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrNotFound
	}
	if err != nil {
		return models.Card{}, err
	}

	card := models.Card{
		ID:        uuid.NewString(),
		Name:      name,
		Link:      link,
		Owner:     owner,
		Likes:     []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertCard(ctx, card); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// Delete removes the card with the given id. Only the card's owner may
// delete it; other users get ErrForbidden.
func (s *CardService) Delete(ctx context.Context, userID, id string) error {
	card, err := s.repo.GetCardByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if card.Owner.ID != userID {
		return ErrForbidden
	}
	return s.repo.DeleteCard(ctx, id)
}

// SetLike adds (desired true) or removes (desired false) userID in the
// card's like set and returns the card with its fresh likes. Repeating the
// same desired state is a no-op.
func (s *CardService) SetLike(ctx context.Context, userID, id string, desired bool) (models.Card, error) {
	if _, err := s.repo.GetCardByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrNotFound
		}
		return models.Card{}, err
	}

	if desired {
		if err := s.repo.AddLike(ctx, id, userID); err != nil {
			return models.Card{}, err
		}
	} else {
		if err := s.repo.RemoveLike(ctx, id, userID); err != nil {
			return models.Card{}, err
		}
	}

	return s.repo.GetCardByID(ctx, id)
}
