// Package http provides HTTP routing and middleware configuration
// for the gallery service.
package http

import (
	"net/http"

	"github.com/avoronov/photoboard/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the gallery
// API. It applies JSON content-type enforcement, request logging, and token
// authentication, and mounts the user and card endpoints under /v1.
//
// Routes:
//
//	GET    /v1/users/me          → userHandler.GetMe
//	PATCH  /v1/users/me          → userHandler.UpdateProfile
//	PATCH  /v1/users/me/avatar   → userHandler.UpdateAvatar
//	GET    /v1/cards             → cardHandler.List
//	POST   /v1/cards             → cardHandler.Create
//	DELETE /v1/cards/{id}        → cardHandler.Delete
//	PUT    /v1/cards/likes/{id}  → cardHandler.Like
//	DELETE /v1/cards/likes/{id}  → cardHandler.Unlike
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") rejects non-JSON bodies
//  2. WithRequestLogging(logger) logs incoming requests
//  3. TokenAuth(resolver) enforces token authentication
func NewRouter(
	userHandler *UserHandler,
	cardHandler *CardHandler,
	resolver middleware.TokenResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Resolve the authorization token to a user id
	r.Use(middleware.TokenAuth(resolver))

	// Mount API routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/users/me", userHandler.GetMe)
		r.Patch("/users/me", userHandler.UpdateProfile)
		r.Patch("/users/me/avatar", userHandler.UpdateAvatar)

		r.Get("/cards", cardHandler.List)
		r.Post("/cards", cardHandler.Create)
		r.Delete("/cards/{id}", cardHandler.Delete)
		r.Put("/cards/likes/{id}", cardHandler.Like)
		r.Delete("/cards/likes/{id}", cardHandler.Unlike)
	})

	return r
}
