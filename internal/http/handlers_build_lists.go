package httpx

import (
	"net/http"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// BuildListHandlers serves the build list CRUD endpoints.
type BuildListHandlers struct {
	Svc *service.BuildListService
}

// Create stores a new build list on a car the caller owns.
// POST /api/build-lists.
func (h *BuildListHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBuildListRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	bl, err := h.Svc.Create(r.Context(), actor.ID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, bl)
}

// Get returns a build list by ID.
// GET /api/build-lists/{id}.
func (h *BuildListHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	bl, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bl)
}

// ListByCar returns the build lists attached to a car.
// GET /api/build-lists/car/{id}.
func (h *BuildListHandlers) ListByCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, offset := pageParams(r)

	lists, err := h.Svc.ListByCar(r.Context(), id, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, lists)
}

// Update applies changes to a build list the caller owns.
// PUT /api/build-lists/{id}.
func (h *BuildListHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateBuildListRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	bl, err := h.Svc.Update(r.Context(), actor.ID, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bl)
}

// Delete removes a build list the caller owns.
// DELETE /api/build-lists/{id}.
func (h *BuildListHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
