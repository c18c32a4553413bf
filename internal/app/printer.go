package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/szabodaniel/boardgame-collection/internal/i18n"
	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// PrintGames renders the displayed list; its length is the count badge.
func (a *App) PrintGames() {
	fmt.Fprintf(a.out, "%s (%d)\n", a.t(i18n.KeyAllGames), len(a.games))
	if len(a.games) == 0 {
		fmt.Fprintln(a.out, a.t(i18n.KeyNoGamesYet))
		return
	}
	for _, g := range a.games {
		a.printCard(g)
	}
}

func (a *App) printCard(g model.Game) {
	status := a.t(i18n.KeyStatusAvailable)
	if g.Status == model.StatusBorrowed {
		status = a.t(i18n.KeyStatusBorrowed)
	}
	fmt.Fprintf(a.out, "\n%s [%s]  (id: %s)\n", g.DisplayTitle(a.lang), status, g.ID)
	fmt.Fprintf(a.out, "  %s: %d-%d  %s: %d min  %s: %.1f/5\n",
		a.t(i18n.KeyPlayers), g.MinPlayers, g.MaxPlayers,
		a.t(i18n.KeyTime), g.PlayTime,
		a.t(i18n.KeyComplexity), g.ComplexityRating)
	if len(g.Authors) > 0 {
		fmt.Fprintf(a.out, "  %s: %s\n", a.t(i18n.KeyDesigner), strings.Join(g.Authors, ", "))
	}
	if g.Status == model.StatusBorrowed {
		fmt.Fprintf(a.out, "  %s: %s", a.t(i18n.KeyBorrowedBy), g.BorrowedBy)
		if g.BorrowedDate != nil {
			fmt.Fprintf(a.out, "  %s: %s", a.t(i18n.KeyBorrowedDate), g.BorrowedDate.Format(time.DateOnly))
		}
		if g.ReturnDate != nil {
			fmt.Fprintf(a.out, "  %s: %s", a.t(i18n.KeyReturnDate), g.ReturnDate.Format(time.DateOnly))
		}
		fmt.Fprintln(a.out)
	}
	if len(g.Owners) > 0 {
		names := make([]string, 0, len(g.Owners))
		for _, o := range g.Owners {
			names = append(names, o.Name)
		}
		fmt.Fprintf(a.out, "  %s: %s\n", a.t(i18n.KeyOwners), strings.Join(names, ", "))
	}
}

func (a *App) PrintResults() {
	if len(a.results) == 0 {
		return
	}
	fmt.Fprintln(a.out, a.t(i18n.KeySearchResults))
	for _, r := range a.results {
		if r.Year != "" {
			fmt.Fprintf(a.out, "  %s  %s: %s  (bgg: %s)\n", r.Name, a.t(i18n.KeyReleased), r.Year, r.ID)
		} else {
			fmt.Fprintf(a.out, "  %s  (bgg: %s)\n", r.Name, r.ID)
		}
	}
}

func (a *App) PrintDetails(g model.Game) {
	fmt.Fprintln(a.out, g.DisplayTitle(a.lang))
	fmt.Fprintf(a.out, "  %s: %d  %s: %d-%d  %s: %d min  %s: %.1f/5\n",
		a.t(i18n.KeyYear), g.ReleaseYear,
		a.t(i18n.KeyPlayers), g.MinPlayers, g.MaxPlayers,
		a.t(i18n.KeyTime), g.PlayTime,
		a.t(i18n.KeyComplexity), g.ComplexityRating)
	if g.BggRating > 0 {
		fmt.Fprintf(a.out, "  %s: %.1f/10\n", a.t(i18n.KeyRating), g.BggRating)
	}
	if g.MinAge > 0 {
		fmt.Fprintf(a.out, "  %s: %d+\n", a.t(i18n.KeyMinAge), g.MinAge)
	}
	if len(g.Authors) > 0 {
		fmt.Fprintf(a.out, "  %s: %s\n", a.t(i18n.KeyDesigner), strings.Join(g.Authors, ", "))
	}
	if len(g.Categories) > 0 {
		fmt.Fprintf(a.out, "  %s: %s\n", a.t(i18n.KeyCategories), strings.Join(g.Categories, ", "))
	}
	if desc := g.DisplayShortDescription(a.lang); desc != "" {
		fmt.Fprintf(a.out, "  %s\n", desc)
	} else if desc := g.DisplayDescription(a.lang); desc != "" {
		fmt.Fprintf(a.out, "  %s: %s\n", a.t(i18n.KeyDescription), desc)
	}
	if g.PersonalNotes != "" {
		fmt.Fprintf(a.out, "  %s: %s\n", a.t(i18n.KeyPersonalNotes), g.PersonalNotes)
	}
}

func (a *App) PrintIdentity() {
	if !a.session.Authenticated() {
		fmt.Fprintln(a.out, a.t(i18n.KeyNotSignedIn))
		return
	}
	user := a.session.User()
	fmt.Fprintf(a.out, "%s %s <%s>\n", a.t(i18n.KeySignedInAs), user.Name, user.Email)
	if claims, err := a.session.Claims(); err == nil {
		if exp := claims.ExpiresAt(); !exp.IsZero() {
			fmt.Fprintf(a.out, "  token expires %s\n", exp.Format(time.RFC3339))
		}
	}
}
