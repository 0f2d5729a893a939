package board

import "github.com/avoronov/photoboard/internal/models"

// Session is the explicit per-page session context: the bootstrapped user
// and the pending-delete token. It replaces free-standing module state so
// every handler receives the same owned context.
type Session struct {
	// User is the current user, set once by Bootstrap and updated only
	// from server-confirmed profile responses.
	User models.User

	pendingDelete string
}

// RequestDelete records the card id whose deletion is awaiting confirmation.
// The id is captured when the confirmation dialog opens, not when the
// eventual submit fires.
func (s *Session) RequestDelete(id string) {
	s.pendingDelete = id
}

// PendingDelete returns the card id awaiting delete confirmation, or "".
func (s *Session) PendingDelete() string {
	return s.pendingDelete
}

// ClearPendingDelete discards the pending-delete token.
func (s *Session) ClearPendingDelete() {
	s.pendingDelete = ""
}
