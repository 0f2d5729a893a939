package board

import (
	"context"

	"github.com/avoronov/photoboard/internal/models"
)

type userResult struct {
	user models.User
	err  error
}

type cardsResult struct {
	cards []models.Card
	err   error
}

// Bootstrap loads the current user and the card collection concurrently and
// renders both only after the two fetches resolve. If either fails nothing
// is rendered, so the page never shows a half-loaded state. The initial
// batch is appended in server order; only cards owned by the bootstrapped
// user get a delete affordance.
func (r *Reconciler) Bootstrap(ctx context.Context) error {
	userCh := make(chan userResult, 1)
	cardsCh := make(chan cardsResult, 1)

	go func() {
		u, err := r.api.GetUserInfo(ctx)
		userCh <- userResult{user: u, err: err}
	}()
	go func() {
		cards, err := r.api.GetCardList(ctx)
		cardsCh <- cardsResult{cards: cards, err: err}
	}()

	ur := <-userCh
	cr := <-cardsCh
	if ur.err != nil {
		return ur.err
	}
	if cr.err != nil {
		return cr.err
	}

	r.session.User = ur.user
	r.view.RenderProfile(ur.user)

	for _, card := range cr.cards {
		r.cards.Append(card)
		r.view.AppendCard(card, card.Owner.ID == ur.user.ID)
	}
	return nil
}
