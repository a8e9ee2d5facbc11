package middleware

import (
	"context"
	"net/http"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthKeyHeader es el header con la API key del llamador.
const AuthKeyHeader = "auth-key"

// AuthContext:
// - Si viene auth-key y el verifier la resuelve => setea claims.
// - Si no viene, o la key no existe, el request sigue igual; los handlers
//   deciden entre 422 (header ausente) y 403 (key inválida).
func AuthContext(verifier auth.Verifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AuthKeyHeader)
			if key == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), key)
			if err != nil {
				// nunca loguear la key
				log.Warn("auth key rejected", map[string]any{
					"path":  r.URL.Path,
					"error": err.Error(),
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
