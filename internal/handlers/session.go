package handlers

import (
	"net/http"

	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"go.uber.org/zap"
)

type SessionResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    models.DemoUser `json:"user"`
}

// StartDemo creates a demo user and returns its session token.
func StartDemo(sessions *services.SessionService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, user, err := sessions.Demo(r.Context())
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, SessionResponse{
			Success: true,
			Message: "Welcome to NeuroSphere Demo!",
			Token:   token,
			User:    user,
		})
	}
}

// GetSession returns the demo-session marker of the caller.
func GetSession(sessions *services.SessionService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := sessions.User(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{Success: true, User: user})
	}
}

func EndSession(sessions *services.SessionService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.End(r.Context(), middleware.BearerToken(r)); err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Message: "Signed out"})
	}
}
