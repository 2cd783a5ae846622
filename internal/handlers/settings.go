package handlers

import (
	"net/http"

	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"go.uber.org/zap"
)

type AppearanceResponse struct {
	Success    bool              `json:"success"`
	Appearance models.Appearance `json:"appearance"`
	Themes     []string          `json:"themes"`
	Modes      []string          `json:"modes"`
}

func GetAppearance(settings *services.SettingsService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := settings.Appearance(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AppearanceResponse{Success: true, Appearance: a, Themes: services.Themes, Modes: services.Modes})
	}
}

// SetAppearance updates theme and/or mode; omitted fields keep their value.
func SetAppearance(settings *services.SettingsService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.Appearance
		if !decodeJSON(w, r, &req) {
			return
		}
		a, err := settings.SetAppearance(r.Context(), middleware.UserID(r.Context()), req)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AppearanceResponse{Success: true, Appearance: a, Themes: services.Themes, Modes: services.Modes})
	}
}
