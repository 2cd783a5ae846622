package handlers

import "net/http"

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Health reports liveness and the active storage backend.
func Health(backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Success: true, Status: "ok", Storage: backend})
	}
}
