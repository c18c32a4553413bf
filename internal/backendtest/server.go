// Package backendtest hosts an in-memory replica of the collection backend
// REST API. It exists so the client packages can be exercised end to end
// over real HTTP; it is not a backend implementation and keeps no state
// beyond the lifetime of a test.
package backendtest

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/szabodaniel/boardgame-collection/internal/model"
)

const tokenSecret = "backendtest-secret"

type Server struct {
	mu sync.Mutex

	// Catalog is the external game database the backend proxies, keyed by
	// external id. Textual fields may be stored HTML-escaped, the way the
	// upstream delivers them.
	Catalog map[string]model.Game

	// Games is the collection, keyed by record id.
	Games map[string]model.Game

	// Credentials maps accepted identity-provider credentials to users.
	Credentials map[string]model.User

	// RejectAuth makes every authenticated endpoint answer 403, for
	// session-expiry tests.
	RejectAuth bool

	// AuthedRequests counts requests that carried a bearer token.
	AuthedRequests int
}

func New() *Server {
	return &Server{
		Catalog:     make(map[string]model.Game),
		Games:       make(map[string]model.Game),
		Credentials: make(map[string]model.User),
	}
}

func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.POST("/api/auth/google", s.loginGoogle)

	api := e.Group("", s.authMW)
	api.GET("/api/auth/me", s.me)
	api.GET("/api/games", s.listGames)
	api.POST("/api/games", s.createGame)
	api.GET("/api/games/search/:query", s.searchGames)
	api.GET("/api/games/details/:bggID", s.gameDetails)
	api.PUT("/api/games/:id/borrow", s.borrowGame)
	api.PUT("/api/games/:id/return", s.returnGame)
	api.PUT("/api/games/:id", s.updateGame)
	api.DELETE("/api/games/:id", s.deleteGame)
	api.POST("/api/games/:id/add-to-my-collection", s.addOwner)
	api.DELETE("/api/games/:id/remove-from-my-collection", s.removeOwner)

	return e
}

func (s *Server) loginGoogle(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.mu.Lock()
	user, ok := s.Credentials[req.Credential]
	s.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.LoginResponse{AccessToken: token, User: user})
}

func (s *Server) authMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token in Authorization header")
		}
		s.mu.Lock()
		s.AuthedRequests++
		reject := s.RejectAuth
		s.mu.Unlock()
		if reject {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}

		tokenStr := strings.TrimPrefix(authorization, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(tokenSecret), nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid")
		}
		sub, _ := claims["sub"].(string)
		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)
		c.Set("user", model.User{ID: sub, Name: name, Email: email})
		return next(c)
	}
}

func currentUser(c echo.Context) model.User {
	user, _ := c.Get("user").(model.User)
	return user
}

func (s *Server) me(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) listGames(c echo.Context) error {
	status := c.QueryParam("status")
	search := strings.ToLower(c.QueryParam("search"))
	myGamesOnly := c.QueryParam("my_games_only") == "true"
	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]model.Game, 0, len(s.Games))
	for _, g := range s.Games {
		if status != "" && string(g.Status) != status {
			continue
		}
		if search != "" && !textMatch(g, search) {
			continue
		}
		if myGamesOnly && !g.OwnedBy(user.ID) {
			continue
		}
		games = append(games, g)
	}
	return c.JSON(http.StatusOK, games)
}

func textMatch(g model.Game, search string) bool {
	if strings.Contains(strings.ToLower(g.Title), search) {
		return true
	}
	for _, a := range g.Authors {
		if strings.Contains(strings.ToLower(a), search) {
			return true
		}
	}
	for _, cat := range g.Categories {
		if strings.Contains(strings.ToLower(cat), search) {
			return true
		}
	}
	return false
}

func (s *Server) createGame(c echo.Context) error {
	var game model.Game
	if err := c.Bind(&game); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.Games {
		if existing.BggID == game.BggID {
			return echo.NewHTTPError(http.StatusConflict, "Game already in collection")
		}
	}
	game.ID = uuid.NewString()
	if game.Status == "" {
		game.Status = model.StatusAvailable
	}
	game.Owners = []model.Owner{{ID: user.ID, Name: user.Name}}
	s.Games[game.ID] = game
	return c.JSON(http.StatusOK, game)
}

func (s *Server) searchGames(c echo.Context) error {
	query := strings.ToLower(c.Param("query"))
	if len(strings.TrimSpace(query)) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "Query must be at least 2 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]model.SearchResult, 0)
	for id, g := range s.Catalog {
		if !strings.Contains(strings.ToLower(g.Title), query) {
			continue
		}
		result := model.SearchResult{ID: id, Name: g.Title, Thumbnail: g.CoverImage}
		if g.ReleaseYear > 0 {
			result.Year = strconv.Itoa(g.ReleaseYear)
		}
		results = append(results, result)
		if len(results) == 10 {
			break
		}
	}
	return c.JSON(http.StatusOK, results)
}

func (s *Server) gameDetails(c echo.Context) error {
	bggID := c.Param("bggID")

	s.mu.Lock()
	details, ok := s.Catalog[bggID]
	s.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found")
	}
	details.ID = ""
	details.BggID = bggID
	details.Owners = nil
	details.Status = model.StatusAvailable
	if len(details.Authors) > 3 {
		details.Authors = details.Authors[:3]
	}
	if len(details.Categories) > 5 {
		details.Categories = details.Categories[:5]
	}
	return c.JSON(http.StatusOK, details)
}

func (s *Server) borrowGame(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[id]
	if !ok || game.Status != model.StatusAvailable {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found or not available")
	}
	now := model.Date{Time: time.Now()}
	game.Status = model.StatusBorrowed
	game.BorrowedBy = req.BorrowerName
	game.BorrowedDate = &now
	game.ReturnDate = &req.ReturnDate
	s.Games[id] = game
	return c.JSON(http.StatusOK, game)
}

func (s *Server) returnGame(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[id]
	if !ok || game.Status != model.StatusBorrowed {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found or not borrowed")
	}
	game.Status = model.StatusAvailable
	game.BorrowedBy = ""
	game.BorrowedDate = nil
	game.ReturnDate = nil
	s.Games[id] = game
	return c.JSON(http.StatusOK, game)
}

func (s *Server) updateGame(c echo.Context) error {
	var req model.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found")
	}
	game.TitleHU = req.TitleHU
	game.DescriptionHU = req.DescriptionHU
	game.DescriptionShortHU = req.DescriptionShortHU
	if req.Language != "" {
		game.Language = req.Language
	}
	game.PersonalNotes = req.PersonalNotes
	s.Games[id] = game
	return c.JSON(http.StatusOK, game)
}

func (s *Server) deleteGame(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Games[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found")
	}
	delete(s.Games, id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Game deleted successfully"})
}

func (s *Server) addOwner(c echo.Context) error {
	id := c.Param("id")
	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found")
	}
	if game.OwnedBy(user.ID) {
		return echo.NewHTTPError(http.StatusConflict, "Game already in your collection")
	}
	owner := model.Owner{ID: user.ID, Name: user.Name}
	game.Owners = append(game.Owners, owner)
	s.Games[id] = game
	return c.JSON(http.StatusOK, owner)
}

func (s *Server) removeOwner(c echo.Context) error {
	id := c.Param("id")
	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[id]
	if !ok || !game.OwnedBy(user.ID) {
		return echo.NewHTTPError(http.StatusNotFound, "Game not found in your collection")
	}
	owners := game.Owners[:0]
	for _, o := range game.Owners {
		if o.ID != user.ID {
			owners = append(owners, o)
		}
	}
	// Detaching the last owner removes the record itself.
	if len(owners) == 0 {
		delete(s.Games, id)
		return c.NoContent(http.StatusNoContent)
	}
	game.Owners = owners
	s.Games[id] = game
	return c.NoContent(http.StatusNoContent)
}

