package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/szabodaniel/boardgame-collection/config"
	"github.com/szabodaniel/boardgame-collection/internal/backend"
	"github.com/szabodaniel/boardgame-collection/internal/errs"
	"github.com/szabodaniel/boardgame-collection/internal/i18n"
	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// Login exchanges the identity-provider credential for a session.
func (a *App) Login(ctx context.Context, credential string) error {
	if err := a.session.Login(ctx, credential); err != nil {
		a.log.Debug("login failed", zap.Error(err))
		return errors.New(a.t(i18n.KeyLoginFailed))
	}
	return a.Refresh(ctx)
}

func (a *App) Logout() {
	a.session.Logout()
	a.games = nil
	a.results = nil
}

// Search queries the external game database through the backend proxy.
// Failure clears the result list.
func (a *App) Search(ctx context.Context, query string) error {
	results, err := a.backend.SearchGames(ctx, a.session.Token(), query)
	if err != nil {
		a.results = nil
		if errors.Is(err, backend.ErrQueryTooShort) {
			return err
		}
		return a.fail(err, i18n.KeyFailedToSearch)
	}
	a.results = results
	return nil
}

// Details fetches the full external-database record for one search hit.
func (a *App) Details(ctx context.Context, bggID string) (model.Game, error) {
	details, err := a.backend.GameDetails(ctx, a.session.Token(), bggID, a.lang)
	if err != nil {
		return model.Game{}, a.fail(err, i18n.KeyFailedToAdd)
	}
	return details, nil
}

// Add promotes a loaded detail record into the collection. Success clears
// the add-flow search state and refreshes the list.
func (a *App) Add(ctx context.Context, details model.Game) error {
	if details.BggID == "" {
		return errors.New("no game details loaded")
	}
	if _, err := a.backend.CreateGame(ctx, a.session.Token(), details); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return errors.New(a.t(i18n.KeyGameAlreadyExists))
		}
		return a.fail(err, i18n.KeyFailedToAdd)
	}
	a.results = nil
	return a.Refresh(ctx)
}

// Borrow marks a record as lent out. The form is validated locally; an
// invalid form never issues a request.
func (a *App) Borrow(ctx context.Context, gameID, borrowerName, returnDate string) error {
	req := model.BorrowRequest{
		GameID:       gameID,
		BorrowerName: borrowerName,
	}
	if returnDate != "" {
		date, err := time.Parse(time.DateOnly, returnDate)
		if err != nil {
			return errors.Wrap(err, "return date")
		}
		req.ReturnDate = model.Date{Time: date}
	}
	if err := a.validator.Validate(req); err != nil {
		return errors.Wrap(err, a.t(i18n.KeyFailedToBorrow))
	}

	if _, err := a.backend.BorrowGame(ctx, a.session.Token(), gameID, req); err != nil {
		return a.fail(err, i18n.KeyFailedToBorrow)
	}
	return a.Refresh(ctx)
}

// Return clears a record's borrow sub-state.
func (a *App) Return(ctx context.Context, gameID string) error {
	if g, ok := a.find(gameID); ok && g.Status != model.StatusBorrowed {
		return errors.New(a.t(i18n.KeyFailedToReturn))
	}
	if _, err := a.backend.ReturnGame(ctx, a.session.Token(), gameID); err != nil {
		return a.fail(err, i18n.KeyFailedToReturn)
	}
	return a.Refresh(ctx)
}

// Remove deletes a record, or detaches the current user's ownership,
// depending on config. The confirm callback receives the record's displayed
// title and must return true for the operation to proceed.
func (a *App) Remove(ctx context.Context, gameID string, confirm func(displayedTitle string) bool) error {
	title := gameID
	if g, ok := a.find(gameID); ok {
		title = g.DisplayTitle(a.lang)
	}
	if confirm != nil && !confirm(title) {
		return nil
	}

	var err error
	if a.cfg.DeleteMode == config.DeleteModeDetach {
		err = a.backend.RemoveFromMyCollection(ctx, a.session.Token(), gameID)
	} else {
		err = a.backend.DeleteGame(ctx, a.session.Token(), gameID)
	}
	if err != nil {
		return a.fail(err, i18n.KeyFailedToDelete)
	}
	return a.Refresh(ctx)
}

// Update replaces the record's mutable fields.
func (a *App) Update(ctx context.Context, gameID string, req model.UpdateRequest) error {
	if err := a.validator.Validate(req); err != nil {
		return errors.Wrap(err, a.t(i18n.KeyFailedToUpdate))
	}
	if _, err := a.backend.UpdateGame(ctx, a.session.Token(), gameID, req); err != nil {
		return a.fail(err, i18n.KeyFailedToUpdate)
	}
	return a.Refresh(ctx)
}

// Own adds the current user as an owner. An "already owned" conflict is
// treated as success and refreshes silently.
func (a *App) Own(ctx context.Context, gameID string) error {
	if _, err := a.backend.AddToMyCollection(ctx, a.session.Token(), gameID); err != nil &&
		!errors.Is(err, errs.ErrConflict) {
		return a.fail(err, "")
	}
	return a.Refresh(ctx)
}

// Disown removes the current user from the record's owners.
func (a *App) Disown(ctx context.Context, gameID string) error {
	if err := a.backend.RemoveFromMyCollection(ctx, a.session.Token(), gameID); err != nil {
		return a.fail(err, "")
	}
	return a.Refresh(ctx)
}

// Overview fetches the identity and the unfiltered collection in parallel.
func (a *App) Overview(ctx context.Context) (model.User, []model.Game, error) {
	var (
		user  model.User
		games []model.Game
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		user, err = a.backend.Me(ctx, a.session.Token())
		return err
	})
	gg.Go(func() error {
		var err error
		games, err = a.engine.Run(ctx, a.session.Token(), a.lang, model.FilterState{
			SortKey:       a.filter.SortKey,
			SortDirection: a.filter.SortDirection,
		})
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.User{}, nil, a.fail(err, "")
	}
	return user, games, nil
}

// Health pings the backend.
func (a *App) Health(ctx context.Context) error {
	return a.backend.Health(ctx)
}

func (a *App) find(gameID string) (model.Game, bool) {
	for _, g := range a.games {
		if g.ID == gameID {
			return g, true
		}
	}
	return model.Game{}, false
}
