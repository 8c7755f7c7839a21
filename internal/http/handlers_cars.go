package httpx

import (
	"net/http"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// CarHandlers serves the car CRUD endpoints.
type CarHandlers struct {
	Svc *service.CarService
}

// Create stores a new car owned by the caller.
// POST /api/cars.
func (h *CarHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCarRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	car, err := h.Svc.Create(r.Context(), actor.ID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, car)
}

// Get returns a car by ID.
// GET /api/cars/{id}.
func (h *CarHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	car, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, car)
}

// ListMine returns the caller's cars.
// GET /api/cars.
func (h *CarHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())
	limit, offset := pageParams(r)

	cars, err := h.Svc.ListByUser(r.Context(), actor.ID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cars)
}

// ListByUser returns another user's cars.
// GET /api/cars/user/{id}.
func (h *CarHandlers) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, offset := pageParams(r)

	cars, err := h.Svc.ListByUser(r.Context(), id, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cars)
}

// Update applies changes to a car the caller owns.
// PUT /api/cars/{id}.
func (h *CarHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateCarRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	car, err := h.Svc.Update(r.Context(), actor.ID, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, car)
}

// Delete removes a car the caller owns.
// DELETE /api/cars/{id}.
func (h *CarHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
