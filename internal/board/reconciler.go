// Package board keeps the rendered gallery consistent with the server.
// Nothing here is applied speculatively: the collection and the view are
// mutated only from server-confirmed responses.
package board

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avoronov/photoboard/internal/forms"
	"github.com/avoronov/photoboard/internal/models"
)

// API is the subset of the remote client the reconciler consumes.
type API interface {
	GetUserInfo(ctx context.Context) (models.User, error)
	GetCardList(ctx context.Context) ([]models.Card, error)
	UpdateProfile(ctx context.Context, name, about string) (models.User, error)
	UpdateAvatar(ctx context.Context, avatarURL string) (models.User, error)
	CreateCard(ctx context.Context, title, imageURL string) (models.Card, error)
	RemoveCard(ctx context.Context, id string) error
	SetLike(ctx context.Context, id string, desired bool) (models.Card, error)
}

// Forms groups the entry forms the reconciler resets after confirmed
// operations.
type Forms struct {
	Profile *forms.Form
	Avatar  *forms.Form
	NewCard *forms.Form
	Confirm *forms.Form
}

// Reconciler applies server-confirmed results to the local collection and
// the view. Request failures are logged and leave the last-known-good state
// in place; they are never retried here.
type Reconciler struct {
	api     API
	view    View
	session *Session
	cards   *Collection
	forms   Forms
	log     *zap.Logger
}

// NewReconciler wires a reconciler over the remote client, the view, and
// the session's forms.
func NewReconciler(api API, view View, session *Session, f Forms, log *zap.Logger) *Reconciler {
	return &Reconciler{
		api:     api,
		view:    view,
		session: session,
		cards:   &Collection{},
		forms:   f,
		log:     log,
	}
}

// Session returns the session context owned by this reconciler.
func (r *Reconciler) Session() *Session {
	return r.session
}

// Cards returns the working card collection.
func (r *Reconciler) Cards() *Collection {
	return r.cards
}

// Handlers returns the capability set rendered cards dispatch to.
func (r *Reconciler) Handlers() CardHandlers {
	return CardHandlers{
		OnPreview:       r.Preview,
		OnLikeToggle:    func(id string) { _ = r.ToggleLike(context.Background(), id) },
		OnDeleteRequest: r.RequestDelete,
	}
}

// busy swaps the submit control's label for an in-progress one and returns
// a restore func. The label never outlives the attempt, failed or not.
func busy(submit *forms.SubmitControl, label string) func() {
	prev := submit.Label
	submit.Label = label
	return func() { submit.Label = prev }
}

// UpdateProfile submits a profile edit. On success the confirmed user is
// committed to the session, rendered, and the dialog closed. On failure the
// dialog stays open with its values intact.
func (r *Reconciler) UpdateProfile(ctx context.Context, name, about string) error {
	defer busy(r.forms.Profile.Submit, "Saving...")()

	u, err := r.api.UpdateProfile(ctx, name, about)
	if err != nil {
		r.log.Error("update profile", zap.Error(err))
		return err
	}

	r.session.User = u
	r.view.RenderProfile(u)
	r.view.CloseDialog(DialogEditProfile)
	return nil
}

// UpdateAvatar submits a new avatar URL with the same commit discipline as
// UpdateProfile. The avatar form is reset after a confirmed update.
func (r *Reconciler) UpdateAvatar(ctx context.Context, avatarURL string) error {
	defer busy(r.forms.Avatar.Submit, "Saving...")()

	u, err := r.api.UpdateAvatar(ctx, avatarURL)
	if err != nil {
		r.log.Error("update avatar", zap.Error(err))
		return err
	}

	r.session.User = u
	r.view.RenderProfile(u)
	r.view.CloseDialog(DialogEditAvatar)
	r.forms.Avatar.ResetValues()
	return nil
}

// CreateCard submits a new card. Until the server confirms, nothing is
// rendered. A confirmed card is prepended to the collection with its
// server-assigned id; the form is then reset and its dialog closed. On
// failure the form stays open with the prior values so the user may retry.
func (r *Reconciler) CreateCard(ctx context.Context, title, imageURL string) error {
	defer busy(r.forms.NewCard.Submit, "Creating...")()

	card, err := r.api.CreateCard(ctx, title, imageURL)
	if err != nil {
		r.log.Error("create card", zap.Error(err))
		return err
	}

	r.cards.Prepend(card)
	r.view.PrependCard(card, card.Owner.ID == r.session.User.ID)
	r.view.CloseDialog(DialogNewCard)
	r.forms.NewCard.ResetValues()
	r.forms.NewCard.ClearValidation()
	return nil
}

// RequestDelete captures the delete target and opens the confirmation
// dialog. Only one confirmation is active at a time; a second request
// replaces the pending token.
func (r *Reconciler) RequestDelete(id string) {
	if _, ok := r.cards.Find(id); !ok {
		return
	}
	r.session.RequestDelete(id)
	r.view.OpenDialog(DialogConfirmDelete)
}

// ConfirmDelete performs the confirmed deletion of the pending target. On
// success exactly that card leaves the collection and the dialog closes; on
// failure both stay as they were. A response arriving after the token moved
// on still updates the collection but leaves the now-foreign dialog alone.
func (r *Reconciler) ConfirmDelete(ctx context.Context) error {
	id := r.session.PendingDelete()
	if id == "" {
		return fmt.Errorf("no card pending deletion")
	}

	defer busy(r.forms.Confirm.Submit, "Deleting...")()

	if err := r.api.RemoveCard(ctx, id); err != nil {
		r.log.Error("delete card", zap.Error(err), zap.String("card", id))
		return err
	}

	r.cards.RemoveByID(id)
	r.view.RemoveCard(id)
	if r.session.PendingDelete() == id {
		r.session.ClearPendingDelete()
		r.view.CloseDialog(DialogConfirmDelete)
	}
	return nil
}

// ToggleLike flips a card's like state. The request direction comes from the
// currently observed liked-by-me, and the displayed count and state come from
// the server's response payload, never a local increment, so concurrent
// toggles converge to server truth. On failure nothing visual changes.
func (r *Reconciler) ToggleLike(ctx context.Context, id string) error {
	card, ok := r.cards.Find(id)
	if !ok {
		return fmt.Errorf("unknown card %q", id)
	}
	liked := card.LikedBy(r.session.User.ID)

	updated, err := r.api.SetLike(ctx, id, !liked)
	if err != nil {
		r.log.Error("toggle like", zap.Error(err), zap.String("card", id))
		return err
	}

	card.Likes = updated.Likes
	if r.cards.Replace(card) {
		r.view.SetLikeState(id, updated.LikedBy(r.session.User.ID), updated.LikeCount())
	}
	return nil
}

// Preview opens the full-size preview for a card.
func (r *Reconciler) Preview(id string) {
	card, ok := r.cards.Find(id)
	if !ok {
		return
	}
	r.view.ShowPreview(card)
}

// ShowStats re-fetches the collection and displays its aggregate statistics.
func (r *Reconciler) ShowStats(ctx context.Context) (Stats, error) {
	cards, err := r.api.GetCardList(ctx)
	if err != nil {
		r.log.Error("fetch stats", zap.Error(err))
		return Stats{}, err
	}

	s := ComputeStats(cards)
	r.view.ShowStats(s)
	r.view.OpenDialog(DialogStats)
	return s, nil
}
