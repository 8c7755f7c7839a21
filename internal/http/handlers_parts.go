package httpx

import (
	"net/http"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// PartHandlers serves the part CRUD endpoints.
type PartHandlers struct {
	Svc *service.PartService
}

// Create stores a new part on a build list the caller owns.
// POST /api/parts.
func (h *PartHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePartRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	part, err := h.Svc.Create(r.Context(), actor.ID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, part)
}

// Get returns a part by ID.
// GET /api/parts/{id}.
func (h *PartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	part, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, part)
}

// ListByBuildList returns the parts attached to a build list.
// GET /api/parts/build-list/{id}.
func (h *PartHandlers) ListByBuildList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, offset := pageParams(r)

	parts, err := h.Svc.ListByBuildList(r.Context(), id, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, parts)
}

// Update applies changes to a part the caller owns.
// PUT /api/parts/{id}.
func (h *PartHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdatePartRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	part, err := h.Svc.Update(r.Context(), actor.ID, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, part)
}

// Delete removes a part the caller owns.
// DELETE /api/parts/{id}.
func (h *PartHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	actor, _ := CurrentUser(r.Context())
	if err := h.Svc.Delete(r.Context(), actor.ID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
