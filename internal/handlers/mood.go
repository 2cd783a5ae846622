package handlers

import (
	"net/http"

	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// MoodCheckView adds the slider wording for the stored levels.
type MoodCheckView struct {
	models.MoodCheck
	ValueLabel  string `json:"valueLabel"`
	EnergyLabel string `json:"energyLabel"`
}

func checkView(c models.MoodCheck) MoodCheckView {
	return MoodCheckView{
		MoodCheck:   c,
		ValueLabel:  mood.LevelLabel(c.Mood.Value),
		EnergyLabel: mood.LevelLabel(c.Energy),
	}
}

type MoodCheckResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Check   MoodCheckView `json:"check"`
}

type MoodChecksResponse struct {
	Success bool            `json:"success"`
	Checks  []MoodCheckView `json:"checks"`
	Total   int             `json:"total"`
}

type QuickMoodRequest struct {
	Mood string `json:"mood"`
}

type QuickMoodResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Mood    mood.QuickMood `json:"mood"`
}

type PrefillResponse struct {
	Success    bool             `json:"success"`
	Prefill    services.Prefill `json:"prefill"`
	ValueLabel string           `json:"valueLabel"`
}

func ListMoodChecks(svc *services.MoodService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, err := svc.ListChecks(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		views := lo.Map(checks, func(c models.MoodCheck, _ int) MoodCheckView { return checkView(c) })
		writeJSON(w, http.StatusOK, MoodChecksResponse{Success: true, Checks: views, Total: len(views)})
	}
}

func CreateMoodCheck(svc *services.MoodService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.MoodCheckInput
		if !decodeJSON(w, r, &req) {
			return
		}
		check, err := svc.SaveCheck(r.Context(), middleware.UserID(r.Context()), req)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, MoodCheckResponse{Success: true, Message: "Mood check-in saved", Check: checkView(check)})
	}
}

// QuickMood records a dashboard mood choice for the next editor or check-in.
func QuickMood(svc *services.MoodService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuickMoodRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		q, err := svc.Quick(r.Context(), middleware.UserID(r.Context()), req.Mood)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, QuickMoodResponse{Success: true, Message: "Mood recorded: " + string(q), Mood: q})
	}
}

// MoodPrefill consumes the pending quick mood, if any.
func MoodPrefill(svc *services.MoodService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Prefill(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PrefillResponse{Success: true, Prefill: p, ValueLabel: mood.LevelLabel(p.Value)})
	}
}
