// Package models defines the core data structures for users and photo cards.
package models

import "time"

// User represents a gallery user profile.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"_id"`
	// Name is the display name shown on the profile.
	Name string `json:"name"`
	// About is the short bio text shown under the name.
	About string `json:"about"`
	// Avatar is the URL of the profile picture.
	Avatar string `json:"avatar"`
}

// Card represents a single photo card in the gallery.
type Card struct {
	// ID is the server-assigned identifier for the card.
	ID string `json:"_id"`
	// Name is the card's caption.
	Name string `json:"name"`
	// Link is the URL of the card's image.
	Link string `json:"link"`
	// Owner is the user who created the card.
	Owner User `json:"owner"`
	// Likes holds the ids of every user who liked the card.
	Likes []string `json:"likes"`
	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy reports whether the user with the given id is in the card's like set.
func (c Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeCount returns the size of the card's like set.
func (c Card) LikeCount() int {
	return len(c.Likes)
}
