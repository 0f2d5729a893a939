// Package term renders the gallery to a terminal. It is the client-side
// implementation of the board.View collaborator: it only prints confirmed
// state handed to it by the reconciler.
package term

import (
	"fmt"
	"io"

	"github.com/avoronov/photoboard/internal/board"
	"github.com/avoronov/photoboard/internal/models"
)

// View writes gallery state to an output stream.
type View struct {
	out io.Writer
}

// NewView returns a View writing to out.
func NewView(out io.Writer) *View {
	return &View{out: out}
}

// RenderProfile prints the user's profile block.
func (v *View) RenderProfile(u models.User) {
	fmt.Fprintf(v.out, "%s — %s\n", u.Name, u.About)
	if u.Avatar != "" {
		fmt.Fprintf(v.out, "avatar: %s\n", u.Avatar)
	}
}

// AppendCard prints a card added at the end of the list.
func (v *View) AppendCard(c models.Card, deletable bool) {
	v.printCard(c, deletable)
}

// PrependCard prints a freshly created card.
func (v *View) PrependCard(c models.Card, deletable bool) {
	fmt.Fprintln(v.out, "new card:")
	v.printCard(c, deletable)
}

func (v *View) printCard(c models.Card, deletable bool) {
	mark := " "
	if deletable {
		mark = "*"
	}
	fmt.Fprintf(v.out, "%s [%s] %s (%s) — %d likes\n", mark, c.ID, c.Name, c.Link, c.LikeCount())
}

// RemoveCard prints the removal of a card.
func (v *View) RemoveCard(id string) {
	fmt.Fprintf(v.out, "card %s removed\n", id)
}

// SetLikeState prints a card's confirmed like state and count.
func (v *View) SetLikeState(id string, liked bool, count int) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	fmt.Fprintf(v.out, "card %s %s, %d likes\n", id, state, count)
}

// ShowPreview prints a card's full-size image link.
func (v *View) ShowPreview(c models.Card) {
	fmt.Fprintf(v.out, "%s\n%s\n", c.Name, c.Link)
}

// ShowStats prints the aggregate gallery statistics.
func (v *View) ShowStats(s board.Stats) {
	fmt.Fprintf(v.out, "Total cards: %d\n", s.Total)
	if s.Total > 0 {
		fmt.Fprintf(v.out, "First created: %s\n", board.FormatDate(s.FirstCreated))
		fmt.Fprintf(v.out, "Last created: %s\n", board.FormatDate(s.LastCreated))
	}
	for _, owner := range s.Owners {
		fmt.Fprintf(v.out, "  %s\n", owner.Name)
	}
}

// OpenDialog announces a dialog opening.
func (v *View) OpenDialog(d board.Dialog) {
	fmt.Fprintf(v.out, "[%s]\n", d)
}

// CloseDialog announces a dialog closing.
func (v *View) CloseDialog(d board.Dialog) {
	fmt.Fprintf(v.out, "[/%s]\n", d)
}
