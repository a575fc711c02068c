// Package handler implements the HTTP surface of the API. Handlers parse
// requests and write responses; everything else is delegated to the service
// layer.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ruilin/inspiration-space/internal/service"
)

// InspirationHandler serves the CRUD and query endpoints for inspirations.
type InspirationHandler struct {
	svc    *service.InspirationService
	logger *slog.Logger
}

// NewInspirationHandler creates the handler.
func NewInspirationHandler(svc *service.InspirationService, logger *slog.Logger) *InspirationHandler {
	return &InspirationHandler{svc: svc, logger: logger}
}

type createInspirationRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// Pointer fields distinguish "field absent" from "field set to zero value",
// which is what makes partial updates work over JSON.
type updateInspirationRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Color    *string `json:"color"`
}

// HandleList returns the filtered, sorted collection.
//
// GET /api/inspirations?q=&category=&sortBy=date|title|category&sortOrder=asc|desc
//
// All parameters are optional. The default view is the home feed: every
// record, newest first.
func (h *InspirationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.svc.List(r.Context(),
		q.Get("q"),
		q.Get("category"),
		q.Get("sortBy"),
		q.Get("sortOrder"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleCreate captures a new inspiration.
//
// POST /api/inspirations
// Body: {"content": "...", "category": "learning", "color": "#fff", "title": ""}
func (h *InspirationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createInspirationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid inspiration JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_json",
			Message: "request body must be valid JSON",
		})
		return
	}

	record, err := h.svc.Create(r.Context(), req.Content, req.Category, req.Color, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// HandleGetByID returns a single inspiration.
//
// GET /api/inspirations/{id}
func (h *InspirationHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// HandleUpdate applies a partial update. Absent fields stay as they are.
//
// PUT /api/inspirations/{id}
func (h *InspirationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateInspirationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid inspiration JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_json",
			Message: "request body must be valid JSON",
		})
		return
	}

	record, err := h.svc.Update(r.Context(), r.PathValue("id"), service.UpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Color:    req.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// HandleDelete removes an inspiration.
//
// DELETE /api/inspirations/{id}
func (h *InspirationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCategoryCounts returns per-category totals for the tiles, unaffected
// by any search, filter, or sort a client has active.
//
// GET /api/categories/counts
func (h *InspirationHandler) HandleCategoryCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CountByCategory(r.Context()))
}
