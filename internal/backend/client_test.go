package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/szabodaniel/boardgame-collection/internal/errs"
	"github.com/szabodaniel/boardgame-collection/internal/model"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(zap.NewNop(), Config{
		BaseURL:   srv.URL,
		Timeout:   5 * time.Second,
		SearchRPS: 1000,
	})
}

func TestGamesQueryEncode(t *testing.T) {
	tests := []struct {
		name  string
		query GamesQuery
		want  string
	}{
		{name: "empty", query: GamesQuery{}, want: ""},
		{name: "status", query: GamesQuery{Status: model.StatusAvailable}, want: "status=available"},
		{name: "search", query: GamesQuery{Search: "azul"}, want: "search=azul"},
		{name: "mine", query: GamesQuery{MyGamesOnly: true}, want: "my_games_only=true"},
		{
			name:  "all",
			query: GamesQuery{Status: model.StatusBorrowed, Search: "azul", MyGamesOnly: true},
			want:  "my_games_only=true&search=azul&status=borrowed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.query.Encode())
		})
	}
}

func TestListGamesSendsParamsAndBearer(t *testing.T) {
	var gotQuery, gotAuth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))

	games, err := client.ListGames(context.Background(), "tok", GamesQuery{
		Status: model.StatusAvailable, Search: "azul", MyGamesOnly: true,
	})
	require.NoError(t, err)
	require.Empty(t, games)
	require.Equal(t, "my_games_only=true&search=azul&status=available", gotQuery)
	require.Equal(t, "Bearer tok", gotAuth)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var sawHeader bool
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{"status":"healthy"}`)) //nolint:errcheck
	}))

	require.NoError(t, client.Health(context.Background()))
	require.False(t, sawHeader)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: errs.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: errs.ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, detail: "Game not found", want: errs.ErrNotFound},
		{name: "conflict", status: http.StatusConflict, detail: "Game already in collection", want: errs.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"detail":"` + tt.detail + `"}`)) //nolint:errcheck
			}))

			_, err := client.ListGames(context.Background(), "tok", GamesQuery{})
			require.ErrorIs(t, err, tt.want)
			if tt.detail != "" {
				require.Contains(t, err.Error(), tt.detail)
			}
		})
	}
}

func TestServerErrorCarriesDetail(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`)) //nolint:errcheck
	}))

	_, err := client.ListGames(context.Background(), "tok", GamesQuery{})
	require.Error(t, err)

	var apiErr *errs.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "boom", apiErr.Detail)
}

func TestSearchGamesShortQueryIssuesNoRequest(t *testing.T) {
	requests := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	for _, query := range []string{"", "a", " a ", "\t\n"} {
		_, err := client.SearchGames(context.Background(), "tok", query)
		require.ErrorIs(t, err, ErrQueryTooShort)
	}
	require.Zero(t, requests)
}

func TestSearchGamesDecodesEntities(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"13","name":"Dungeons &amp; Dragons","year":"1974"}]`)) //nolint:errcheck
	}))

	results, err := client.SearchGames(context.Background(), "tok", "dungeons")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Dungeons & Dragons", results[0].Name)
}

func TestGameDetailsNormalizes(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bgg_id":"13","title":"Catan &amp; Seafarers","description":""}`)) //nolint:errcheck
	}))

	details, err := client.GameDetails(context.Background(), "tok", "13", model.LanguageHU)
	require.NoError(t, err)
	require.Equal(t, "Catan & Seafarers", details.Title)
	require.NotNil(t, details.Authors)
	require.NotNil(t, details.Categories)
	require.Equal(t, model.LanguageHU, details.Language)
}
