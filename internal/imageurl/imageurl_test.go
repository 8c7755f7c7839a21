package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_AllowsListedDomain(t *testing.T) {
	v := NewValidator([]string{"imgur.com", "cdn.example.co.uk"})

	assert.NoError(t, v.Validate("https://imgur.com/a/photo.jpg"))
	assert.NoError(t, v.Validate("https://i.imgur.com/photo.jpg"))
	assert.NoError(t, v.Validate("https://example.co.uk/photo.jpg"))
	assert.NoError(t, v.Validate("https://other.example.co.uk/photo.jpg"))
}

func TestValidator_RejectsUnlistedDomain(t *testing.T) {
	v := NewValidator([]string{"imgur.com"})

	assert.ErrorIs(t, v.Validate("https://evil.example.com/photo.jpg"), ErrNotAllowed)
	assert.ErrorIs(t, v.Validate("https://imgur.com.evil.net/photo.jpg"), ErrNotAllowed)
}

func TestValidator_RejectsNonHTTPS(t *testing.T) {
	v := NewValidator([]string{"imgur.com"})

	assert.Error(t, v.Validate("http://imgur.com/photo.jpg"))
	assert.Error(t, v.Validate("ftp://imgur.com/photo.jpg"))
	assert.Error(t, v.Validate("javascript:alert(1)"))
}

func TestValidator_EmptyURLIsValid(t *testing.T) {
	v := NewValidator([]string{"imgur.com"})

	assert.NoError(t, v.Validate(""))
}

func TestValidator_EmptyAllowlistAcceptsAnyHTTPSHost(t *testing.T) {
	v := NewValidator(nil)

	assert.NoError(t, v.Validate("https://anything.example.net/photo.jpg"))
	assert.Error(t, v.Validate("http://anything.example.net/photo.jpg"))
}

func TestValidator_CaseInsensitiveHost(t *testing.T) {
	v := NewValidator([]string{"Imgur.COM"})

	assert.NoError(t, v.Validate("https://I.IMGUR.com/photo.jpg"))
}
