package middleware

import (
	"FoodTracker/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenVerifier проверяет bearer-токен. Реализуется service.TokenService.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// RequireBearer пропускает запрос дальше, только если в Authorization
// лежит действительный токен. Claims кладутся в контекст.
func RequireBearer(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
				return
			}
			claims, err := v.Verify(token)
			if err != nil {
				// причину (истёк, подпись, формат) наружу не отдаём
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - Invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithClaims кладёт claims в контекст.
func WithClaims(ctx context.Context, c *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// GetClaimsFromContext достаёт claims, положенные RequireBearer.
func GetClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*service.Claims)
	return c, ok && c != nil
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
