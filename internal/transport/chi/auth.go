package chi

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authuc "github.com/moradia-ai/moradia/internal/usecase/auth"
	listinguc "github.com/moradia-ai/moradia/internal/usecase/listing"
)

type callerKey struct{}

// callerFromContext returns the authenticated caller, if any.
func callerFromContext(ctx context.Context) (listinguc.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(listinguc.Caller)
	return c, ok
}

func contextWithCaller(ctx context.Context, c listinguc.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// JWTAuthMiddleware returns a middleware that validates Bearer tokens signed
// with the given secret and places the caller identity in the context.
func JWTAuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, r, http.StatusUnauthorized, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, r, http.StatusUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			var claims authuc.Claims
			token, err := jwt.ParseWithClaims(auth[len(bearerPrefix):], &claims,
				func(t *jwt.Token) (any, error) { return secret, nil },
				jwt.WithValidMethods([]string{"HS256"}),
			)
			if err != nil || !token.Valid {
				writeError(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, "invalid token subject")
				return
			}

			caller := listinguc.Caller{UserID: userID, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(contextWithCaller(r.Context(), caller)))
		})
	}
}
