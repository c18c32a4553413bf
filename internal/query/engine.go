// Package query produces the ordered list of collection records to display
// for a given filter state. Every trigger issues one fresh fetch; responses
// are not cached across runs and in-flight requests are not cancelled when a
// newer trigger supersedes them, so a slow stale response can overwrite a
// newer list. That race is accepted, matching the original behavior.
package query

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/szabodaniel/boardgame-collection/internal/backend"
	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// Lister is the slice of the backend client the engine needs.
type Lister interface {
	ListGames(ctx context.Context, token string, query backend.GamesQuery) ([]model.Game, error)
}

type Engine struct {
	log   *zap.Logger
	games Lister
}

func NewEngine(log *zap.Logger, games Lister) *Engine {
	return &Engine{
		log:   log.Named("query"),
		games: games,
	}
}

// Run executes one full pipeline pass: server-side query, entity decoding,
// the local conjunctive advanced filter, and the final sort.
func (e *Engine) Run(ctx context.Context, token string, lang model.Language, state model.FilterState) ([]model.Game, error) {
	games, err := e.games.ListGames(ctx, token, backend.GamesQuery{
		Status:      state.Status,
		Search:      state.Search,
		MyGamesOnly: state.MyGamesOnly,
	})
	if err != nil {
		return nil, err
	}

	// Decode before any comparison or display; the upstream source may
	// deliver HTML-escaped text.
	for i := range games {
		games[i].DecodeEntities()
	}

	if state.AdvancedActive && !state.Advanced.Empty() {
		filtered := games[:0]
		for _, g := range games {
			if matchesAdvanced(g, state.Advanced) {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	e.sortGames(games, lang, state.SortKey, state.SortDirection)

	e.log.Debug("query run",
		zap.String("status", string(state.Status)),
		zap.String("search", state.Search),
		zap.Bool("my_games_only", state.MyGamesOnly),
		zap.Int("results", len(games)))
	return games, nil
}

// matchesAdvanced is a pure conjunction: every populated bound must hold.
// A record with no categories (or authors) fails a populated category
// (or designer) filter outright.
func matchesAdvanced(g model.Game, f model.AdvancedFilter) bool {
	if f.MinPlayers != nil && g.MinPlayers < *f.MinPlayers {
		return false
	}
	if f.MaxPlayers != nil && g.MaxPlayers > *f.MaxPlayers {
		return false
	}
	if f.PlayTimeMin != nil && g.PlayTime < *f.PlayTimeMin {
		return false
	}
	if f.PlayTimeMax != nil && g.PlayTime > *f.PlayTimeMax {
		return false
	}
	if f.ComplexityMin != nil && g.ComplexityRating < *f.ComplexityMin {
		return false
	}
	if f.ComplexityMax != nil && g.ComplexityRating > *f.ComplexityMax {
		return false
	}
	if f.YearMin != nil && g.ReleaseYear < *f.YearMin {
		return false
	}
	if f.YearMax != nil && g.ReleaseYear > *f.YearMax {
		return false
	}
	if f.Category != "" && !anyContains(g.Categories, f.Category) {
		return false
	}
	if f.Author != "" && !anyContains(g.Authors, f.Author) {
		return false
	}
	return true
}

func anyContains(values []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// sortGames orders by the active key. The base comparator is written
// "high/early first" (rating and playtime descending, titles A first);
// an ascending direction negates it rather than re-deriving the logic.
func (e *Engine) sortGames(games []model.Game, lang model.Language, key model.SortKey, dir model.SortDirection) {
	var cmp func(a, b model.Game) int
	switch key {
	case model.SortByAlphabetical:
		coll := collate.New(collationTag(lang))
		cmp = func(a, b model.Game) int {
			return coll.CompareString(a.DisplayTitle(lang), b.DisplayTitle(lang))
		}
	case model.SortByPlaytime:
		cmp = func(a, b model.Game) int {
			switch {
			case a.PlayTime > b.PlayTime:
				return -1
			case a.PlayTime < b.PlayTime:
				return 1
			}
			return 0
		}
	default: // rating; absent/zero sorts last
		cmp = func(a, b model.Game) int {
			switch {
			case a.BggRating > b.BggRating:
				return -1
			case a.BggRating < b.BggRating:
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(games, func(i, j int) bool {
		c := cmp(games[i], games[j])
		if dir == model.SortAscending {
			return c > 0
		}
		return c < 0
	})
}

func collationTag(lang model.Language) language.Tag {
	if lang == model.LanguageHU {
		return language.Hungarian
	}
	return language.English
}
