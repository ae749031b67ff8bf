package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bijoux-be/internal/user"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware parses a bearer token when present and attaches the
// verified actor to the request context. Requests without a valid token pass
// through anonymously; RequireAuth decides what needs an identity.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		actor := user.Actor{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func WithActor(ctx context.Context, a user.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func ActorFrom(ctx context.Context) (user.Actor, bool) {
	a, ok := ctx.Value(actorKey).(user.Actor)
	return a, ok
}

// RequireAuth rejects requests that carry no verified actor.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ActorFrom(r.Context()); !ok {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose actor is not an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFrom(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !actor.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": msg,
	})
}
