package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", models.NewValidationError("title", "Please add a title"), http.StatusBadRequest, "Please add a title"},
		{"wrapped validation", fmt.Errorf("save: %w", models.NewValidationError("mood", "Unknown mood")), http.StatusBadRequest, "Unknown mood"},
		{"not found", fmt.Errorf("editor: %w", models.ErrNotFound), http.StatusNotFound, "Not found"},
		{"unauthorized", models.ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
		{"internal", errors.New("redis: connection refused"), http.StatusInternalServerError, "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, zap.NewNop(), httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestWriteError_LogsInternalOnly(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	req := httptest.NewRequest(http.MethodPost, "/api/journal/entries", nil)

	writeError(httptest.NewRecorder(), log, req, models.NewValidationError("title", "x"))
	assert.Zero(t, logs.Len())

	writeError(httptest.NewRecorder(), log, req, errors.New("boom"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "/api/journal/entries", entry.ContextMap()["path"])
}

func TestDecodeJSON_RejectsOversizedBody(t *testing.T) {
	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := httptest.NewRecorder()
	var dest map[string]string

	ok := decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), &dest)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
