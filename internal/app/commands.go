package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/szabodaniel/boardgame-collection/internal/i18n"
	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// NewRootCommand builds the collection command tree.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "collection",
		Short:         "Board game collection manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.Bootstrap(cmd.Context())
		},
	}

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newOverviewCommand(a),
		newListCommand(a),
		newSearchCommand(a),
		newShowCommand(a),
		newAddCommand(a),
		newBorrowCommand(a),
		newReturnCommand(a),
		newRemoveCommand(a),
		newEditCommand(a),
		newOwnCommand(a),
		newDisownCommand(a),
		newLangCommand(a),
		newHealthCommand(a),
	)
	return root
}

func newLoginCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login [credential]",
		Short: "Sign in with a Google identity credential",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var credential string
			if len(args) == 1 {
				credential = args[0]
			} else {
				fmt.Fprint(a.out, "credential: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(a.out)
				if err != nil {
					return err
				}
				credential = strings.TrimSpace(string(raw))
			}
			if err := a.Login(cmd.Context(), credential); err != nil {
				return err
			}
			a.PrintIdentity()
			a.PrintGames()
			return nil
		},
	}
}

func newLogoutCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.Logout()
			fmt.Fprintln(a.out, a.t(i18n.KeyNotSignedIn))
			return nil
		},
	}
}

func newWhoamiCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.PrintIdentity()
			return nil
		},
	}
}

func newOverviewCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the signed-in user and the full collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, games, err := a.Overview(cmd.Context())
			if err != nil {
				return err
			}
			var borrowed int
			for _, g := range games {
				if g.Status == model.StatusBorrowed {
					borrowed++
				}
			}
			fmt.Fprintf(a.out, "%s %s <%s>\n", a.t(i18n.KeySignedInAs), user.Name, user.Email)
			fmt.Fprintf(a.out, "%s (%d)  %s: %d  %s: %d\n",
				a.t(i18n.KeyAllGames), len(games),
				a.t(i18n.KeyAvailable), len(games)-borrowed,
				a.t(i18n.KeyBorrowed), borrowed)
			for _, g := range games {
				fmt.Fprintf(a.out, "  %s\n", g.DisplayTitle(a.lang))
			}
			return nil
		},
	}
}

func newListCommand(a *App) *cobra.Command {
	var (
		status     string
		search     string
		mine       bool
		minPlayers int
		maxPlayers int
		timeMin    int
		timeMax    int
		weightMin  float64
		weightMax  float64
		yearMin    int
		yearMax    int
		category   string
		author     string
		sortKey    string
		direction  string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection with filters and sorting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := a.Filter()
			f.Status = model.Status(status)
			f.Search = search
			f.MyGamesOnly = mine
			f.SortKey = model.SortKey(sortKey)
			f.SortDirection = model.SortDirection(direction)

			adv := model.AdvancedFilter{Category: category, Author: author}
			flags := cmd.Flags()
			if flags.Changed("min-players") {
				adv.MinPlayers = &minPlayers
			}
			if flags.Changed("max-players") {
				adv.MaxPlayers = &maxPlayers
			}
			if flags.Changed("time-min") {
				adv.PlayTimeMin = &timeMin
			}
			if flags.Changed("time-max") {
				adv.PlayTimeMax = &timeMax
			}
			if flags.Changed("weight-min") {
				adv.ComplexityMin = &weightMin
			}
			if flags.Changed("weight-max") {
				adv.ComplexityMax = &weightMax
			}
			if flags.Changed("year-min") {
				adv.YearMin = &yearMin
			}
			if flags.Changed("year-max") {
				adv.YearMax = &yearMax
			}
			f.Advanced = adv
			f.AdvancedActive = !adv.Empty()

			if err := a.Refresh(cmd.Context()); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (available|borrowed)")
	cmd.Flags().StringVar(&search, "search", "", "free text search over title, designers and categories")
	cmd.Flags().BoolVar(&mine, "mine", false, "only games in my collection")
	cmd.Flags().IntVar(&minPlayers, "min-players", 0, "game must support at least this many players")
	cmd.Flags().IntVar(&maxPlayers, "max-players", 0, "game must be playable with at most this many players")
	cmd.Flags().IntVar(&timeMin, "time-min", 0, "minimum play time in minutes")
	cmd.Flags().IntVar(&timeMax, "time-max", 0, "maximum play time in minutes")
	cmd.Flags().Float64Var(&weightMin, "weight-min", 0, "minimum complexity rating")
	cmd.Flags().Float64Var(&weightMax, "weight-max", 0, "maximum complexity rating")
	cmd.Flags().IntVar(&yearMin, "year-min", 0, "earliest release year")
	cmd.Flags().IntVar(&yearMax, "year-max", 0, "latest release year")
	cmd.Flags().StringVar(&category, "category", "", "category substring match")
	cmd.Flags().StringVar(&author, "author", "", "designer substring match")
	cmd.Flags().StringVar(&sortKey, "sort", string(model.SortByRating), "sort key (rating|alphabetical|playtime)")
	cmd.Flags().StringVar(&direction, "direction", string(model.SortDescending), "sort direction (desc|asc)")
	return cmd
}

func newSearchCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the external game catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Search(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			a.PrintResults()
			return nil
		},
	}
}

func newShowCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <bgg-id>",
		Short: "Show catalog details for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := a.Details(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.PrintDetails(details)
			return nil
		},
	}
}

func newAddCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <bgg-id>",
		Short: "Add a catalog game to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := a.Details(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.Add(cmd.Context(), details); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
}

func newBorrowCommand(a *App) *cobra.Command {
	var (
		borrower   string
		returnDate string
	)
	cmd := &cobra.Command{
		Use:   "borrow <id>",
		Short: "Lend a game out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Borrow(cmd.Context(), args[0], borrower, returnDate); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
	cmd.Flags().StringVar(&borrower, "to", "", "borrower name")
	cmd.Flags().StringVar(&returnDate, "until", "", "expected return date (YYYY-MM-DD)")
	return cmd
}

func newReturnCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "return <id>",
		Short: "Mark a borrowed game as returned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Return(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
}

func newRemoveCommand(a *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a game from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm := func(title string) bool {
				if yes {
					return true
				}
				fmt.Fprintf(a.out, "%s \"%s\" [y/N]: ", a.t(i18n.KeyConfirmDelete), title)
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return false
				}
				answer := strings.ToLower(strings.TrimSpace(line))
				return answer == "y" || answer == "yes"
			}
			if err := a.Remove(cmd.Context(), args[0], confirm); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func newEditCommand(a *App) *cobra.Command {
	var req model.UpdateRequest
	var language string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit the localized fields and notes of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Language = model.Language(language)
			if err := a.Update(cmd.Context(), args[0], req); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
	cmd.Flags().StringVar(&req.TitleHU, "title-hu", "", "Hungarian title")
	cmd.Flags().StringVar(&req.DescriptionHU, "description-hu", "", "Hungarian description")
	cmd.Flags().StringVar(&req.DescriptionShortHU, "short-description-hu", "", "short Hungarian description")
	cmd.Flags().StringVar(&language, "language", "", "game language (hu|en|multilang)")
	cmd.Flags().StringVar(&req.PersonalNotes, "notes", "", "personal notes")
	return cmd
}

func newOwnCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "own <id>",
		Short: "Add a game to my collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Own(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
}

func newDisownCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disown <id>",
		Short: "Remove a game from my collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Disown(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.PrintGames()
			return nil
		},
	}
}

func newLangCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lang",
		Short: "Toggle the interface language",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			lang := a.ToggleLanguage()
			fmt.Fprintf(a.out, "%s: %s\n", a.t(i18n.KeyTitle), lang)
			return nil
		},
	}
}

func newHealthCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "ok")
			return nil
		},
	}
}
