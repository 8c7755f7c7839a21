package service

import "github.com/WebbPulse/carmodpicker/internal/imageurl"

// newTestImageValidator allows imgur.com only.
func newTestImageValidator() *imageurl.Validator {
	return imageurl.NewValidator([]string{"imgur.com"})
}

func stringPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func int64Ptr(n int64) *int64 { return &n }

func boolPtr(b bool) *bool { return &b }
