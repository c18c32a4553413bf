package authtoken

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims wraps the payload of a backend-issued bearer token. The client
// never verifies the signature (that is the backend's job on every request);
// these helpers only surface display data such as the subject and expiry.
type Claims struct {
	claims jwt.MapClaims
}

// Peek decodes a token without verifying it.
func Peek(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return &Claims{claims: claims}, nil
}

func (c *Claims) GetUserID() string {
	if sub, ok := c.claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func (c *Claims) GetName() string {
	if name, ok := c.claims["name"].(string); ok {
		return name
	}
	return ""
}

func (c *Claims) GetEmail() string {
	if email, ok := c.claims["email"].(string); ok {
		return email
	}
	return ""
}

func (c *Claims) GetUser() (sub, name, email string) {
	return c.GetUserID(), c.GetName(), c.GetEmail()
}

// ExpiresAt returns the token expiry, or the zero time when the claim is
// absent or malformed.
func (c *Claims) ExpiresAt() time.Time {
	exp, err := c.claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
