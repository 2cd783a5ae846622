package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "user_id"

// SessionResolver maps a session token to a user id.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>", falling
// back to the token query parameter used by browser websocket clients.
func BearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// RequireSession rejects requests without a valid session and stores the
// user id in the request context. Failures other than an unknown token are
// logged and answered with 500.
func RequireSession(sessions SessionResolver, log *zap.Logger) func(http.Handler) http.Handler {
	log = log.Named("auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.Resolve(r.Context(), BearerToken(r))
			switch {
			case err != nil && !errors.Is(err, models.ErrUnauthorized):
				log.Error("session lookup failed", zap.String("path", r.URL.Path), zap.Error(err))
				writeAuthError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
				return
			case err != nil || userID == "":
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user id, or "" outside RequireSession.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
