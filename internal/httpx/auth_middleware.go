package httpx

import (
	"net/http"
	"strings"

	"bookshelf/internal/auth"
)

// Authenticate attaches the caller's identity to the request context
// when a valid Bearer token is present and always passes the request
// through. Handlers own the unauthenticated-access decision: reads are
// open, writes answer with the permission-denied payload.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				// Expired or malformed tokens demote the request
				// to anonymous rather than failing it outright.
				next.ServeHTTP(w, r)
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ContextWithActor(r.Context(), userID, claims.Staff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
