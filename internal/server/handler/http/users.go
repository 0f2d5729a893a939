// Package http provides HTTP handlers for the gallery's user and card
// endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronov/photoboard/internal/middleware"
	"github.com/avoronov/photoboard/internal/models"
	"github.com/avoronov/photoboard/internal/service"
)

// UserService defines the interface for profile operations required by the
// UserHandler.
type UserService interface {
	// Get returns the user with the given id.
	Get(ctx context.Context, id string) (models.User, error)
	// UpdateProfile stores a new display name and bio.
	UpdateProfile(ctx context.Context, id, name, about string) (models.User, error)
	// UpdateAvatar stores a new avatar URL.
	UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error)
}

// UserHandler handles HTTP requests for the current user's profile.
type UserHandler struct {
	// UserService performs the underlying profile operations.
	UserService UserService
}

// GetMe handles GET /users/me requests, returning the authenticated user.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	u, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, u)
}

// UpdateProfile handles PATCH /users/me requests.
// It expects a JSON body with non-empty "name" and "about" fields.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Name  string `json:"name"`
		About string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.About == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, u)
}

// UpdateAvatar handles PATCH /users/me/avatar requests.
// It expects a JSON body with a non-empty "avatar" field.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Avatar == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, u)
}

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
