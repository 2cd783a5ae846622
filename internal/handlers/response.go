package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Response is the envelope shared by every JSON endpoint without a payload.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// writeError maps service errors onto status codes. Validation messages are
// shown to the user as is; anything unexpected is logged and hidden.
func writeError(w http.ResponseWriter, log *zap.Logger, r *http.Request, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFail(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, models.ErrValidation):
		writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeFail(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrUnauthorized):
		writeFail(w, http.StatusUnauthorized, "Authentication required")
	default:
		log.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		writeFail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

// decodeJSON reads the request body into dest, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
