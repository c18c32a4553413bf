package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// GamesQuery carries the server-side filter parameters. Zero values are
// omitted from the query string; my_games_only is sent only when set.
type GamesQuery struct {
	Status      model.Status
	Search      string
	MyGamesOnly bool
}

func (q GamesQuery) Encode() string {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.MyGamesOnly {
		params.Set("my_games_only", "true")
	}
	return params.Encode()
}

func (c *Client) ListGames(ctx context.Context, token string, query GamesQuery) ([]model.Game, error) {
	path := "/api/games"
	if enc := query.Encode(); enc != "" {
		path += "?" + enc
	}
	var games []model.Game
	if err := c.do(ctx, http.MethodGet, path, token, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *Client) CreateGame(ctx context.Context, token string, game model.Game) (model.Game, error) {
	var created model.Game
	if err := c.do(ctx, http.MethodPost, "/api/games", token, game, &created); err != nil {
		return model.Game{}, err
	}
	return created, nil
}

func (c *Client) BorrowGame(ctx context.Context, token, gameID string, req model.BorrowRequest) (model.Game, error) {
	var updated model.Game
	if err := c.do(ctx, http.MethodPut, "/api/games/"+url.PathEscape(gameID)+"/borrow", token, req, &updated); err != nil {
		return model.Game{}, err
	}
	return updated, nil
}

func (c *Client) ReturnGame(ctx context.Context, token, gameID string) (model.Game, error) {
	var updated model.Game
	if err := c.do(ctx, http.MethodPut, "/api/games/"+url.PathEscape(gameID)+"/return", token, nil, &updated); err != nil {
		return model.Game{}, err
	}
	return updated, nil
}

func (c *Client) UpdateGame(ctx context.Context, token, gameID string, req model.UpdateRequest) (model.Game, error) {
	var updated model.Game
	if err := c.do(ctx, http.MethodPut, "/api/games/"+url.PathEscape(gameID), token, req, &updated); err != nil {
		return model.Game{}, err
	}
	return updated, nil
}

func (c *Client) DeleteGame(ctx context.Context, token, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+url.PathEscape(gameID), token, nil, nil)
}

func (c *Client) AddToMyCollection(ctx context.Context, token, gameID string) (model.Owner, error) {
	var owner model.Owner
	if err := c.do(ctx, http.MethodPost, "/api/games/"+url.PathEscape(gameID)+"/add-to-my-collection", token, nil, &owner); err != nil {
		return model.Owner{}, err
	}
	return owner, nil
}

func (c *Client) RemoveFromMyCollection(ctx context.Context, token, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+url.PathEscape(gameID)+"/remove-from-my-collection", token, nil, nil)
}
