package authtoken

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestPeek(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub":   "u1",
		"name":  "Anna",
		"email": "anna@example.com",
		"exp":   exp.Unix(),
	})

	claims, err := Peek(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.GetUserID())
	require.Equal(t, "Anna", claims.GetName())
	require.Equal(t, "anna@example.com", claims.GetEmail())

	sub, name, email := claims.GetUser()
	require.Equal(t, "u1", sub)
	require.Equal(t, "Anna", name)
	require.Equal(t, "anna@example.com", email)
	require.True(t, claims.ExpiresAt().Equal(exp))
}

func TestPeekDoesNotVerifySignature(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})
	// Corrupt the signature; the payload must still be readable.
	tampered := token[:len(token)-2] + "xx"

	claims, err := Peek(tampered)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.GetUserID())
}

func TestPeekMalformedToken(t *testing.T) {
	_, err := Peek("not-a-token")
	require.Error(t, err)
}

func TestMissingClaims(t *testing.T) {
	claims, err := Peek(signedToken(t, jwt.MapClaims{}))
	require.NoError(t, err)
	require.Empty(t, claims.GetUserID())
	require.Empty(t, claims.GetName())
	require.Empty(t, claims.GetEmail())
	require.True(t, claims.ExpiresAt().IsZero())
}
