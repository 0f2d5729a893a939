package board

import (
	"time"

	"github.com/avoronov/photoboard/internal/models"
)

// OwnerBadge is one unique card owner shown in the stats dialog.
type OwnerBadge struct {
	ID   string
	Name string
}

// Stats holds the aggregate statistics of the card collection.
type Stats struct {
	// Total is the number of cards.
	Total int
	// FirstCreated is the creation time of the oldest card and
	// LastCreated of the newest. Both are zero for an empty collection.
	FirstCreated time.Time
	LastCreated  time.Time
	// Owners lists each unique card owner once, in first-seen order,
	// regardless of how many cards they own.
	Owners []OwnerBadge
}

// ComputeStats derives statistics from a card list in server order. The
// server returns cards newest-first, so the date extremes are taken by
// position: oldest is the last element, newest the first. That ordering
// assumption comes from the backend's contract, not from sorting here.
func ComputeStats(cards []models.Card) Stats {
	s := Stats{Total: len(cards)}
	if len(cards) == 0 {
		return s
	}

	s.LastCreated = cards[0].CreatedAt
	s.FirstCreated = cards[len(cards)-1].CreatedAt

	seen := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		if _, ok := seen[c.Owner.ID]; ok {
			continue
		}
		seen[c.Owner.ID] = struct{}{}
		s.Owners = append(s.Owners, OwnerBadge{ID: c.Owner.ID, Name: c.Owner.Name})
	}
	return s
}

// FormatDate renders a timestamp the way the stats dialog displays it.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
