package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(_ context.Context, key string) (auth.Claims, error) {
	email, ok := s[key]
	if !ok {
		return auth.Claims{}, errors.New("unknown key")
	}
	return auth.Claims{UserID: email}, nil
}

func runAuthContext(t *testing.T, key string) (auth.Claims, bool) {
	t.Helper()

	var (
		got auth.Claims
		ok  bool
	)
	h := AuthContext(stubVerifier{"k1": "a@example.com"}, logger.Nop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = GetClaims(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	if key != "" {
		req.Header.Set(AuthKeyHeader, key)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestAuthContext_ValidKeySetsClaims(t *testing.T) {
	c, ok := runAuthContext(t, "k1")
	assert.True(t, ok)
	assert.Equal(t, "a@example.com", c.UserID)
}

func TestAuthContext_UnknownKeyPassesThroughWithoutClaims(t *testing.T) {
	_, ok := runAuthContext(t, "nope")
	assert.False(t, ok)
}

func TestAuthContext_MissingHeaderPassesThrough(t *testing.T) {
	_, ok := runAuthContext(t, "")
	assert.False(t, ok)
}
