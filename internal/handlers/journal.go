package handlers

import (
	"net/http"

	"github.com/AnshRaj112/neurosphere-backend/internal/journal"
	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CreateEntryResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Entry   models.JournalEntry `json:"entry"`
}

type GetEntriesResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Entries []journal.EntryView `json:"entries"`
	Total   int                 `json:"total"`
}

// CreateEntry saves a journal entry for the authenticated user.
func CreateEntry(svc *services.JournalService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req journal.EntryInput
		if !decodeJSON(w, r, &req) {
			return
		}

		entry, err := svc.Save(r.Context(), middleware.UserID(r.Context()), req)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, CreateEntryResponse{
			Success: true,
			Message: "Journal entry saved",
			Entry:   entry,
		})
	}
}

// GetEntries runs the journal query from ?search= and ?filter=.
func GetEntries(svc *services.JournalService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := journal.ParseFilter(r.URL.Query().Get("filter"))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		q := journal.Query{Search: r.URL.Query().Get("search"), Filter: filter}

		views, err := svc.List(r.Context(), middleware.UserID(r.Context()), q)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, GetEntriesResponse{Success: true, Entries: views, Total: len(views)})
	}
}

// DeleteEntry removes an entry by id. Unknown ids succeed.
func DeleteEntry(svc *services.JournalService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), middleware.UserID(r.Context()), id); err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Message: "Journal entry deleted"})
	}
}
