package board

import "github.com/avoronov/photoboard/internal/models"

// Collection is the ordered working set of cards. Insertion order is display
// order: the initial batch is appended in server order, newly created cards
// go to the front.
type Collection struct {
	cards []models.Card
}

// Len returns the number of cards.
func (c *Collection) Len() int {
	return len(c.cards)
}

// Cards returns the cards in display order. The slice is shared; callers
// must not mutate it.
func (c *Collection) Cards() []models.Card {
	return c.cards
}

// Append adds a card to the end, preserving server order during bootstrap.
func (c *Collection) Append(card models.Card) {
	c.cards = append(c.cards, card)
}

// Prepend inserts a card at the front, the position for freshly created cards.
func (c *Collection) Prepend(card models.Card) {
	c.cards = append([]models.Card{card}, c.cards...)
}

// Find returns the card with the given id.
func (c *Collection) Find(id string) (models.Card, bool) {
	for _, card := range c.cards {
		if card.ID == id {
			return card, true
		}
	}
	return models.Card{}, false
}

// Replace swaps the stored card with the same id for the given one.
// It reports whether the id was present.
func (c *Collection) Replace(card models.Card) bool {
	for i := range c.cards {
		if c.cards[i].ID == card.ID {
			c.cards[i] = card
			return true
		}
	}
	return false
}

// RemoveByID deletes the card with the given id, reporting whether it was
// present.
func (c *Collection) RemoveByID(id string) bool {
	for i := range c.cards {
		if c.cards[i].ID == id {
			c.cards = append(c.cards[:i], c.cards[i+1:]...)
			return true
		}
	}
	return false
}
