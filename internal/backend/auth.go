package backend

import (
	"context"
	"net/http"

	"github.com/szabodaniel/boardgame-collection/internal/model"
)

// Me verifies the bearer token and returns the identity it belongs to.
func (c *Client) Me(ctx context.Context, token string) (model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// LoginGoogle exchanges an identity-provider credential for a backend
// bearer token.
func (c *Client) LoginGoogle(ctx context.Context, credential string) (model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/google", "", model.LoginRequest{Credential: credential}, &resp); err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

// Health pings the backend reachability endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", "", nil, nil)
}
