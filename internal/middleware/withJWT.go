package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/ddegtyarev/linkpulse/internal/app/service"
)

// ContextKey is a custom type used for keys in the context. It helps
// prevent collisions in context keys.
type ContextKey string

// UserIDKey is the key used to store and retrieve the user ID from the
// request context.
const UserIDKey ContextKey = "userID"

// UserID extracts the identity injected by the JWT middleware. The
// second return is false when the request carries no identity.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// WithJWT checks for a valid JWT in the request's cookies. If the token
// is missing or invalid, a new one is generated and sent to the client,
// so every creation request ends up owner-linked. The user ID from the
// claims is injected into the request context.
func WithJWT(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := ""

			if cookie, err := r.Cookie("token"); err == nil {
				if claims, err := auth.ParseClaims(cookie); err == nil {
					userID = claims.UserID
				}
			}

			if userID == "" {
				tokenString, generatedID, err := auth.BuildJWTString()
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     "token",
					Value:    tokenString,
					Expires:  time.Now().Add(service.TokenExp),
					HttpOnly: true,
					Path:     "/",
				})
				userID = generatedID
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireJWT rejects requests without a valid token cookie. Owner-scoped
// endpoints sit behind it; unlike WithJWT it never mints an identity.
func RequireJWT(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseClaims(cookie)
			if err != nil || claims.UserID == "" {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
