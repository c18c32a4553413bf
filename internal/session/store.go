package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/szabodaniel/boardgame-collection/internal/model"
	"github.com/szabodaniel/boardgame-collection/pkg/authtoken"
)

type State string

const (
	StateUnknown         State = "unknown"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// AuthAPI is the slice of the backend the store needs.
type AuthAPI interface {
	Me(ctx context.Context, token string) (model.User, error)
	LoginGoogle(ctx context.Context, credential string) (model.LoginResponse, error)
}

// Store holds the authenticated identity and bearer credential. Transitions:
// Unknown -> {Authenticated, Unauthenticated} during Bootstrap,
// Unauthenticated -> Authenticated via Login, Authenticated ->
// Unauthenticated via Logout/Forget. Nothing else.
type Store struct {
	log    *zap.Logger
	api    AuthAPI
	tokens *TokenStorage

	// providerSignOut is the identity-provider sign-out hook; its failure
	// is never surfaced to the user.
	providerSignOut func() error

	mu    sync.RWMutex
	state State
	token string
	user  model.User
}

type Option func(*Store)

func WithProviderSignOut(fn func() error) Option {
	return func(s *Store) { s.providerSignOut = fn }
}

func NewStore(log *zap.Logger, api AuthAPI, tokens *TokenStorage, opts ...Option) *Store {
	s := &Store{
		log:    log.Named("session"),
		api:    api,
		tokens: tokens,
		state:  StateUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bootstrap restores the session from the persisted credential. It never
// returns an error: any failure (missing token, network error, rejection)
// resolves to an unauthenticated session with the stored token cleared.
func (s *Store) Bootstrap(ctx context.Context) State {
	token, err := s.tokens.Load()
	if err != nil {
		s.log.Warn("load persisted token", zap.Error(err))
	}
	if token == "" {
		s.setUnauthenticated()
		return StateUnauthenticated
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		s.log.Debug("no valid session found", zap.Error(err))
		if err := s.tokens.Clear(); err != nil {
			s.log.Warn("clear rejected token", zap.Error(err))
		}
		s.setUnauthenticated()
		return StateUnauthenticated
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = token
	s.user = user
	s.mu.Unlock()
	return StateAuthenticated
}

// Login exchanges the identity-provider credential for a backend token. On
// failure nothing is persisted and the session stays unauthenticated.
func (s *Store) Login(ctx context.Context, credential string) error {
	resp, err := s.api.LoginGoogle(ctx, credential)
	if err != nil {
		return errors.Wrap(err, "exchange credential")
	}

	if err := s.tokens.Save(resp.AccessToken); err != nil {
		// The session still works for this process; it just won't survive
		// a restart.
		s.log.Warn("persist token", zap.Error(err))
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = resp.AccessToken
	s.user = resp.User
	s.mu.Unlock()
	return nil
}

// Logout clears the session and invokes the identity-provider sign-out
// hook. It never fails user-visibly.
func (s *Store) Logout() {
	s.Forget()
	if s.providerSignOut != nil {
		if err := s.providerSignOut(); err != nil {
			s.log.Warn("identity-provider sign-out", zap.Error(err))
		}
	}
}

// Forget is the credential-rejection recovery path: a 401/403 on any call
// funnels here, clearing both the persisted and in-memory credential.
func (s *Store) Forget() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("clear persisted token", zap.Error(err))
	}
	s.setUnauthenticated()
}

func (s *Store) setUnauthenticated() {
	s.mu.Lock()
	s.state = StateUnauthenticated
	s.token = ""
	s.user = model.User{}
	s.mu.Unlock()
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Authenticated() bool {
	return s.State() == StateAuthenticated
}

// Token returns the bearer credential callers must pass explicitly to
// backend requests.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Claims peeks at the current token's payload for display purposes.
func (s *Store) Claims() (*authtoken.Claims, error) {
	token := s.Token()
	if token == "" {
		return nil, errors.New("no active session")
	}
	return authtoken.Peek(token)
}
