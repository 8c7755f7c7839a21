package httpx

import (
	"errors"
	"net/http"

	"github.com/WebbPulse/carmodpicker/internal/data"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/service"
)

// writeServiceError maps service and data layer errors onto the wire.
// Unrecognized errors become an opaque 500 so internals do not leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		WriteValidationError(w, verr)
		return
	}

	switch {
	case errors.Is(err, data.ErrUserNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "user_not_found", Err: err})
	case errors.Is(err, data.ErrCarNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "car_not_found", Err: err})
	case errors.Is(err, data.ErrBuildListNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "build_list_not_found", Err: err})
	case errors.Is(err, data.ErrPartNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "part_not_found", Err: err})
	case errors.Is(err, data.ErrUsernameExists):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "username_exists", Err: err})
	case errors.Is(err, data.ErrEmailExists):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_exists", Err: err})
	case errors.Is(err, data.ErrVINExists):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "vin_exists", Err: err})
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
	case errors.Is(err, service.ErrAccountDisabled):
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "account_disabled", Err: err})
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "forbidden", Err: err})
	case errors.Is(err, service.ErrInvalidToken):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_token", Err: err})
	case errors.Is(err, service.ErrEmailAlreadyVerified):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "already_verified", Err: err})
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "internal_error",
			Err:     errors.New("internal server error"),
		})
	}
}
