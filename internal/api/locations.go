package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/zmanim-api/internal/database"
	"github.com/zapponejosh/zmanim-api/internal/logger"
)

// maxLocationBody caps POST /locations bodies.
const maxLocationBody = 1 << 16

// ListLocations handles GET /api/v1/locations
func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.db.ListLocations(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to list locations", err)
		return
	}
	WriteSuccess(w, locations)
}

// GetLocation handles GET /api/v1/locations/{id}
func (h *Handlers) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.db.GetLocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "Failed to get location", err)
		return
	}
	WriteSuccess(w, loc)
}

type createLocationRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
	Timezone  string  `json:"timezone"`
	InIsrael  bool    `json:"in_israel"`
}

// CreateLocation handles POST /api/v1/locations
func (h *Handlers) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLocationBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body: "+err.Error())
		return
	}

	loc := &database.Location{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Elevation: req.Elevation,
		Timezone:  req.Timezone,
		InIsrael:  req.InIsrael,
	}
	if err := h.db.CreateLocation(r.Context(), loc); err != nil {
		h.fail(w, r, "Failed to create location", err)
		return
	}

	logger.Info(r.Context(), "location created",
		slog.String("id", loc.ID),
		slog.String("name", loc.Name),
	)
	WriteCreated(w, loc)
}

// DeleteLocation handles DELETE /api/v1/locations/{id}
func (h *Handlers) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.db.DeleteLocation(r.Context(), id); err != nil {
		h.fail(w, r, "Failed to delete location", err)
		return
	}

	logger.Info(r.Context(), "location deleted", slog.String("id", id))
	WriteSuccess(w, map[string]string{"deleted": id})
}
