package app

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/szabodaniel/boardgame-collection/config"
	"github.com/szabodaniel/boardgame-collection/internal/backend"
	"github.com/szabodaniel/boardgame-collection/internal/errs"
	"github.com/szabodaniel/boardgame-collection/internal/i18n"
	"github.com/szabodaniel/boardgame-collection/internal/model"
	"github.com/szabodaniel/boardgame-collection/internal/query"
	"github.com/szabodaniel/boardgame-collection/internal/session"
	"github.com/szabodaniel/boardgame-collection/pkg/validate"
)

// App wires the session store, backend client and query engine behind the
// command surface. It is the view layer's stand-in: the only state it owns
// is the currently displayed list and the ephemeral search results.
type App struct {
	log       *zap.Logger
	cfg       config.Config
	backend   *backend.Client
	session   *session.Store
	engine    *query.Engine
	validator *validate.CustomValidator

	lang   model.Language
	filter model.FilterState

	// games is the previously displayed list; a transient fetch failure
	// leaves it untouched.
	games []model.Game
	// results are the ephemeral external-database search hits.
	results []model.SearchResult

	out io.Writer
}

func New(log *zap.Logger, cfg config.Config) (*App, error) {
	tokenPath := cfg.TokenFile
	if tokenPath == "" {
		var err error
		if tokenPath, err = session.DefaultTokenPath(); err != nil {
			return nil, err
		}
	}

	client := backend.NewClient(log, cfg.Backend)
	return &App{
		log:       log.Named("app"),
		cfg:       cfg,
		backend:   client,
		session:   session.NewStore(log, client, session.NewTokenStorage(tokenPath)),
		engine:    query.NewEngine(log, client),
		validator: validate.NewCustomValidator(),
		lang:      cfg.Language,
		filter: model.FilterState{
			SortKey:       model.SortByRating,
			SortDirection: model.SortDescending,
		},
		out: os.Stdout,
	}, nil
}

// t resolves a message key under the active language.
func (a *App) t(key string) string {
	return i18n.Translate(a.lang, key)
}

// ToggleLanguage flips the UI language.
func (a *App) ToggleLanguage() model.Language {
	a.lang = i18n.Toggle(a.lang)
	return a.lang
}

func (a *App) Session() *session.Store { return a.session }

func (a *App) Games() []model.Game { return a.games }

func (a *App) Results() []model.SearchResult { return a.results }

func (a *App) Filter() *model.FilterState { return &a.filter }

// Bootstrap restores the persisted session. It never fails; the outcome is
// the resulting session state.
func (a *App) Bootstrap(ctx context.Context) session.State {
	return a.session.Bootstrap(ctx)
}

// Refresh re-runs the collection query engine. On failure the previously
// displayed list stays as it was, except that a credential rejection also
// drops the session.
func (a *App) Refresh(ctx context.Context) error {
	games, err := a.engine.Run(ctx, a.session.Token(), a.lang, a.filter)
	if err != nil {
		a.log.Warn("collection fetch failed, keeping previous list", zap.Error(err))
		return a.fail(err, "")
	}
	a.games = games
	return nil
}

// fail maps an operation error onto its user-facing form. A 401/403
// abandons the operation and forces a logout; other failures surface the
// message for messageKey, carrying the server detail when one came back.
func (a *App) fail(err error, messageKey string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrUnauthorized) {
		a.session.Forget()
		return errors.New(a.t(i18n.KeySessionExpired))
	}
	if messageKey == "" {
		return err
	}
	if detail := errs.Detail(err); detail != "" {
		return errors.Errorf("%s: %s", a.t(messageKey), detail)
	}
	return errors.New(a.t(messageKey))
}
