package backend

import (
	"context"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// ErrQueryTooShort is returned before any request is issued when the search
// input has fewer than two non-whitespace characters.
var ErrQueryTooShort = errors.New("search query must be at least 2 characters")

// SearchGames looks a title up in the external game database via the
// backend proxy. Calls are rate limited to stay polite to the upstream.
func (c *Client) SearchGames(ctx context.Context, token, query string) ([]model.SearchResult, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, ErrQueryTooShort
	}
	if err := c.searchLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var results []model.SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/games/search/"+url.PathEscape(query), token, nil, &results); err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Name = html.UnescapeString(results[i].Name)
	}
	return results, nil
}

// GameDetails fetches the full external-database record for one game and
// normalizes it: entities decoded, optional fields backfilled to their
// empty/zero defaults, language defaulted to the UI's active language.
// Defaulting happens here, at the data-access boundary, not at call sites.
func (c *Client) GameDetails(ctx context.Context, token, bggID string, activeLang model.Language) (model.Game, error) {
	var details model.Game
	if err := c.do(ctx, http.MethodGet, "/api/games/details/"+url.PathEscape(bggID), token, nil, &details); err != nil {
		return model.Game{}, err
	}
	details.DecodeEntities()
	if details.Authors == nil {
		details.Authors = []string{}
	}
	if details.Categories == nil {
		details.Categories = []string{}
	}
	if details.Language == "" {
		details.Language = activeLang
	}
	return details, nil
}
