// Package api implements the typed HTTP client for the gallery REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/avoronov/photoboard/internal/models"
)

// RequestError is returned for any non-success HTTP status. Failed requests
// are never retried here; recovery is the caller's responsibility.
type RequestError struct {
	// Status is the HTTP status code of the failed request.
	Status int
	// Body holds the response body, when one was readable.
	Body string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client performs typed operations against the gallery backend.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// New returns a Client that sends every request to the given base URL with
// the token as its authorization header. A nil httpClient falls back to
// http.DefaultClient.
func New(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, baseURL: baseURL, token: token}
}

// do issues one request and decodes a successful JSON response into out.
// A non-2xx status is converted into a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &RequestError{Status: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetUserInfo fetches the current user's profile.
func (c *Client) GetUserInfo(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/users/me", nil, &u)
	return u, err
}

// GetCardList fetches the full card collection in server order.
func (c *Client) GetCardList(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := c.do(ctx, http.MethodGet, "/cards", nil, &cards)
	return cards, err
}

// UpdateProfile submits a new display name and bio, returning the
// server-confirmed user.
func (c *Client) UpdateProfile(ctx context.Context, name, about string) (models.User, error) {
	payload := map[string]string{"name": name, "about": about}
	var u models.User
	err := c.do(ctx, http.MethodPatch, "/users/me", payload, &u)
	return u, err
}

// UpdateAvatar submits a new avatar URL, returning the server-confirmed user.
func (c *Client) UpdateAvatar(ctx context.Context, avatarURL string) (models.User, error) {
	payload := map[string]string{"avatar": avatarURL}
	var u models.User
	err := c.do(ctx, http.MethodPatch, "/users/me/avatar", payload, &u)
	return u, err
}

// CreateCard submits a new card, returning the created card with its
// server-assigned id, owner, and timestamp.
func (c *Client) CreateCard(ctx context.Context, title, imageURL string) (models.Card, error) {
	payload := map[string]string{"name": title, "link": imageURL}
	var card models.Card
	err := c.do(ctx, http.MethodPost, "/cards", payload, &card)
	return card, err
}

// RemoveCard deletes the card with the given id.
func (c *Client) RemoveCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+id, nil, nil)
}

// SetLike likes (desired true) or unlikes (desired false) a card and returns
// the card with its fresh like set. The operation is idempotent server-side;
// callers derive desired from the current observed like state, never a
// cached one.
func (c *Client) SetLike(ctx context.Context, id string, desired bool) (models.Card, error) {
	method := http.MethodDelete
	if desired {
		method = http.MethodPut
	}
	var card models.Card
	err := c.do(ctx, method, "/cards/likes/"+id, nil, &card)
	return card, err
}
