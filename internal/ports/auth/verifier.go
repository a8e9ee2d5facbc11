package auth

import "context"

// Verifier resuelve una API key (header auth-key) a claims o devuelve error.
type Verifier interface {
	Verify(ctx context.Context, key string) (Claims, error)
}
