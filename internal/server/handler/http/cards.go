package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronov/photoboard/internal/middleware"
	"github.com/avoronov/photoboard/internal/models"
)

// CardService defines the interface for card operations required by the
// CardHandler.
type CardService interface {
	// List returns every card, newest first.
	List(ctx context.Context) ([]models.Card, error)
	// Create stores a new card owned by ownerID.
	Create(ctx context.Context, ownerID, name, link string) (models.Card, error)
	// Delete removes a card; only its owner may do so.
	Delete(ctx context.Context, userID, id string) error
	// SetLike adds or removes userID in the card's like set and returns
	// the card with its fresh likes.
	SetLike(ctx context.Context, userID, id string, desired bool) (models.Card, error)
}

// CardHandler handles HTTP requests for the card collection.
type CardHandler struct {
	// CardService performs the underlying card operations.
	CardService CardService
}

// List handles GET /cards requests, returning the full collection in
// newest-first order.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.CardService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}
	writeJSON(w, cards)
}

// Create handles POST /cards requests.
// It expects a JSON body with non-empty "name" and "link" fields and
// returns the created card with its server-assigned id and timestamp.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Name string `json:"name"`
		Link string `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Link == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	card, err := h.CardService.Create(r.Context(), userID, req.Name, req.Link)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(card)
}

// Delete handles DELETE /cards/{id} requests.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.CardService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "card deleted"})
}

// Like handles PUT /cards/likes/{id} requests, adding the authenticated
// user to the card's like set.
func (h *CardHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.setLike(w, r, true)
}

// Unlike handles DELETE /cards/likes/{id} requests, removing the
// authenticated user from the card's like set.
func (h *CardHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.setLike(w, r, false)
}

func (h *CardHandler) setLike(w http.ResponseWriter, r *http.Request, desired bool) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	card, err := h.CardService.SetLike(r.Context(), userID, id, desired)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, card)
}
