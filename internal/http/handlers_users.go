package httpx

import (
	"net/http"
	"strconv"

	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// UserHandlers serves account endpoints. Registration goes through the
// auth service so the verification email is part of signup.
type UserHandlers struct {
	Svc  *service.UserService
	Auth *service.AuthService
}

// Me returns the profile behind the current session.
// GET /api/users/me.
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())
	WriteJSON(w, http.StatusOK, user)
}

// Create registers a new account.
// POST /api/users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Auth.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// Get returns a user profile by ID.
// GET /api/users/{id}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Update applies profile changes to the caller's own account.
// PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	actor, _ := CurrentUser(r.Context())
	user, err := h.Svc.Update(r.Context(), actor.ID, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// pathID parses the {id} path parameter. On failure it writes a 422 in
// the same field-error shape as body validation, with loc ["path","id"].
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []model.FieldError{{
				Loc:  []string{"path", "id"},
				Msg:  "id must be a positive integer",
				Type: "type_error.integer",
			}},
		})
		return 0, false
	}
	return id, true
}

// pageParams parses limit and offset query parameters, leaving bounds
// enforcement to the repositories.
func pageParams(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return limit, offset
}
