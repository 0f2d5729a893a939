package term

import (
	"regexp"

	"github.com/avoronov/photoboard/internal/board"
	"github.com/avoronov/photoboard/internal/forms"
)

// namePattern allows Latin and Cyrillic letters, spaces, and hyphens, the
// constraint the gallery applies to every name-like input.
var namePattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\s-]+$`)

const nameMessage = "Only letters, spaces, and hyphens are allowed."

// DefaultConfig carries the state-class names shared by all gallery forms.
var DefaultConfig = forms.Config{
	InputErrorClass:     "popup__input_type_error",
	ErrorClass:          "popup__error_visible",
	InactiveButtonClass: "popup__button_disabled",
}

// NewForms builds the session's entry forms with the gallery's input
// constraints and binds validation to them.
func NewForms() (board.Forms, error) {
	f := board.Forms{
		Profile: &forms.Form{
			Name: "edit-profile",
			Fields: []*forms.Field{
				{Name: "name", Required: true, MinLength: 2, MaxLength: 40,
					Pattern: namePattern, CustomMessage: nameMessage},
				{Name: "description", Required: true, MinLength: 2, MaxLength: 200,
					Pattern: namePattern, CustomMessage: nameMessage},
			},
			Submit: &forms.SubmitControl{Label: "Save"},
		},
		Avatar: &forms.Form{
			Name: "edit-avatar",
			Fields: []*forms.Field{
				{Name: "avatar-link", Required: true, URL: true},
			},
			Submit: &forms.SubmitControl{Label: "Save"},
		},
		NewCard: &forms.Form{
			Name: "new-place",
			Fields: []*forms.Field{
				{Name: "place-name", Required: true, MinLength: 2, MaxLength: 30,
					Pattern: namePattern, CustomMessage: nameMessage},
				{Name: "link", Required: true, URL: true},
			},
			Submit: &forms.SubmitControl{Label: "Create"},
		},
		Confirm: &forms.Form{
			Name:   "confirm-delete",
			Submit: &forms.SubmitControl{Label: "Yes"},
		},
	}

	if err := forms.Enable(DefaultConfig, f.Profile, f.Avatar, f.NewCard, f.Confirm); err != nil {
		return board.Forms{}, err
	}
	return f, nil
}
