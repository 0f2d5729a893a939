package board

import "github.com/avoronov/photoboard/internal/models"

// Dialog identifies one of the gallery's modal dialogs.
type Dialog string

const (
	// DialogEditProfile edits the display name and bio.
	DialogEditProfile Dialog = "edit-profile"
	// DialogEditAvatar edits the avatar URL.
	DialogEditAvatar Dialog = "edit-avatar"
	// DialogNewCard creates a card.
	DialogNewCard Dialog = "new-card"
	// DialogConfirmDelete confirms a card deletion.
	DialogConfirmDelete Dialog = "confirm-delete"
	// DialogStats shows the collection statistics.
	DialogStats Dialog = "stats"
)

// View is the rendering collaborator the reconciler drives. Implementations
// own element lookup, styling, and modal transitions; the reconciler only
// tells them what confirmed state to show.
type View interface {
	// RenderProfile shows the user's name, bio, and avatar.
	RenderProfile(u models.User)
	// AppendCard adds a card at the end of the list. deletable controls
	// whether the card gets a delete affordance.
	AppendCard(c models.Card, deletable bool)
	// PrependCard adds a card at the front of the list.
	PrependCard(c models.Card, deletable bool)
	// RemoveCard removes the card with the given id from the list.
	RemoveCard(id string)
	// SetLikeState shows the confirmed like state and count for a card.
	SetLikeState(id string, liked bool, count int)
	// ShowPreview displays a card's image full-size.
	ShowPreview(c models.Card)
	// ShowStats displays the aggregate gallery statistics.
	ShowStats(s Stats)
	// OpenDialog and CloseDialog drive modal transitions.
	OpenDialog(d Dialog)
	CloseDialog(d Dialog)
}

// CardHandlers is the fixed capability set a rendered card dispatches to.
// Renderers receive one value of this type instead of ad hoc closures.
type CardHandlers struct {
	// OnPreview opens the full-size image preview.
	OnPreview func(id string)
	// OnLikeToggle flips the like state of a card.
	OnLikeToggle func(id string)
	// OnDeleteRequest opens the delete confirmation for a card.
	OnDeleteRequest func(id string)
}
