package handlers

import (
	"net/http"
	"strconv"

	"github.com/AnshRaj112/neurosphere-backend/internal/journal"
	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"go.uber.org/zap"
)

type PromptResponse struct {
	Success bool   `json:"success"`
	Index   int    `json:"index"`
	Prompt  string `json:"prompt"`
}

// SelectPromptRequest names a prompt either by text or by index.
type SelectPromptRequest struct {
	Prompt string `json:"prompt"`
	Index  *int   `json:"index,omitempty"`
}

// RandomPrompt returns a prompt other than ?current=. intn is the random
// source; nil uses math/rand.
func RandomPrompt(notifier notify.Notifier, intn func(int) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := -1
		if raw := r.URL.Query().Get("current"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeFail(w, http.StatusBadRequest, "current must be a prompt index")
				return
			}
			current = n
		}

		i := journal.NextPrompt(current, intn)
		notifier.Notify(middleware.UserID(r.Context()), notify.Notification{
			Kind:        notify.KindInfo,
			Title:       "New reflection prompt generated",
			Description: "Take a moment to reflect on this question",
		})
		writeJSON(w, http.StatusOK, PromptResponse{Success: true, Index: i, Prompt: journal.PromptAt(i)})
	}
}

// SelectPrompt hands a prompt to the next editor mount.
func SelectPrompt(handoff *services.HandoffService, notifier notify.Notifier, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectPromptRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		prompt := req.Prompt
		if req.Index != nil {
			prompt = journal.PromptAt(*req.Index)
		}

		userID := middleware.UserID(r.Context())
		if err := handoff.OfferPrompt(r.Context(), userID, prompt); err != nil {
			writeError(w, log, r, err)
			return
		}
		notifier.Notify(userID, notify.Notification{
			Kind:        notify.KindInfo,
			Title:       "Opening Journal",
			Description: "Let's write about: " + prompt,
		})
		writeJSON(w, http.StatusOK, Response{Success: true, Message: "Prompt selected"})
	}
}
