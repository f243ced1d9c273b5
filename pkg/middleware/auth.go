package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/valuation-api/internal/domain"
	"github.com/vfg2006/valuation-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas que não exigem token
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
	"/v1/login":    {},
	"/v1/register": {},
}

// TokenValidator valida o token JWT e devolve as claims do usuário
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retorna as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
