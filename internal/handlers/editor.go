package handlers

import (
	"net/http"
	"net/url"

	"github.com/AnshRaj112/neurosphere-backend/internal/insight"
	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EditorResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Editor  services.EditorState `json:"editor"`
}

type InsightResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Insight insight.Snapshot `json:"insight"`
}

type TagRequest struct {
	Tag string `json:"tag"`
}

// MountEditor opens the editor, recovering any draft. The body is optional.
func MountEditor(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts services.MountOptions
		if r.ContentLength != 0 && !decodeJSON(w, r, &opts) {
			return
		}

		state, err := editors.Mount(r.Context(), middleware.UserID(r.Context()), opts)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		resp := EditorResponse{Success: true, Editor: state}
		if state.Recovered {
			resp.Message = "Draft recovered"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func GetEditor(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := editors.State(middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, EditorResponse{Success: true, Editor: state})
	}
}

// UpdateEditor replaces title, content, mood and tags of the open editor.
func UpdateEditor(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.EditorInput
		if !decodeJSON(w, r, &req) {
			return
		}
		state, err := editors.UpdateState(middleware.UserID(r.Context()), req)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, EditorResponse{Success: true, Editor: state})
	}
}

func AddEditorTag(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TagRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		state, added, err := editors.AddTag(middleware.UserID(r.Context()), req.Tag)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		resp := EditorResponse{Success: true, Editor: state}
		if !added {
			resp.Message = "Tag not added"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func RemoveEditorTag(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, err := tagParam(r)
		if err != nil {
			writeFail(w, http.StatusBadRequest, "Invalid tag")
			return
		}
		state, err := editors.RemoveTag(middleware.UserID(r.Context()), tag)
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, EditorResponse{Success: true, Editor: state})
	}
}

// tagParam returns the decoded {tag} segment. chi routes on RawPath when the
// request carries one, leaving the parameter escaped.
func tagParam(r *http.Request) (string, error) {
	tag := chi.URLParam(r, "tag")
	if r.URL.RawPath == "" {
		return tag, nil
	}
	return url.PathUnescape(tag)
}

// UnmountEditor closes the editor. Closing a closed editor succeeds.
func UnmountEditor(editors *services.EditorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editors.Unmount(middleware.UserID(r.Context()))
		writeJSON(w, http.StatusOK, Response{Success: true})
	}
}

// RequestInsight starts an analysis. The response carries the panel right
// after the request; poll GetInsight or watch /ws/events for the result.
func RequestInsight(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := editors.RequestInsight(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, InsightResponse{Success: true, Insight: snap})
	}
}

func GetInsight(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := editors.Insight(middleware.UserID(r.Context()))
		if err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, InsightResponse{Success: true, Insight: snap})
	}
}

func HideInsight(editors *services.EditorService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := editors.HideInsight(middleware.UserID(r.Context())); err != nil {
			writeError(w, log, r, err)
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true})
	}
}
