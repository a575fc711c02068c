package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ruilin/inspiration-space/internal/apperror"
	"github.com/ruilin/inspiration-space/internal/backgrounds"
	"github.com/ruilin/inspiration-space/internal/model"
)

// BackgroundHandler serves the category background-image mapping.
type BackgroundHandler struct {
	store  *backgrounds.Store
	logger *slog.Logger
}

// NewBackgroundHandler creates the handler.
func NewBackgroundHandler(store *backgrounds.Store, logger *slog.Logger) *BackgroundHandler {
	return &BackgroundHandler{store: store, logger: logger}
}

type setBackgroundRequest struct {
	Category      string `json:"category"`
	BackgroundURL string `json:"backgroundUrl"`
}

// HandleGet returns the full category to URL mapping.
//
// GET /api/backgrounds
func (h *BackgroundHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.All())
}

// HandleSet replaces one category's background image.
//
// PUT /api/backgrounds
// Body: {"category": "learning", "backgroundUrl": "https://..."}
func (h *BackgroundHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req setBackgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid background JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_json",
			Message: "request body must be valid JSON",
		})
		return
	}

	cat, err := model.ParseCategory(req.Category)
	if err != nil {
		writeError(w, apperror.ValidationFailed("category", err.Error()))
		return
	}
	if err := h.store.Set(r.Context(), cat, req.BackgroundURL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.All())
}
