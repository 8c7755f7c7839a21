package service

import (
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/imageurl"
)

// validateImageURL wraps allowlist failures in the same validation error
// shape as the request validators, under the image_url field.
func validateImageURL(images *imageurl.Validator, raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	if err := images.Validate(*raw); err != nil {
		verr := &model.ValidationError{}
		verr.Add("image_url", err.Error(), "value_error.url")
		return verr
	}
	return nil
}
