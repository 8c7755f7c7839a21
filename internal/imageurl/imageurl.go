// Package imageurl validates user-supplied image URLs before they are
// stored on profiles, cars, build lists, and parts.
package imageurl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ErrNotAllowed is returned when the URL is well formed but its host is
// not on the allowlist.
var ErrNotAllowed = errors.New("image host not allowed")

// Validator checks image URLs against an allowlist of registrable
// domains. An empty allowlist accepts any https host.
type Validator struct {
	allowed map[string]struct{}
}

// NewValidator builds a validator from allowlist entries. Entries are
// reduced to their registrable domain (eTLD+1), so "cdn.imgur.com" and
// "imgur.com" both allow the whole imgur.com domain.
func NewValidator(hosts []string) *Validator {
	v := &Validator{allowed: make(map[string]struct{}, len(hosts))}
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if base, err := publicsuffix.EffectiveTLDPlusOne(h); err == nil {
			h = base
		}
		v.allowed[h] = struct{}{}
	}
	return v
}

// Validate checks scheme, shape, and host allowlist membership. A nil
// or empty URL is valid; callers treat it as "no image".
func (v *Validator) Validate(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse image URL: %w", err)
	}
	if u.Scheme != "https" {
		return errors.New("image URL must use https")
	}
	if u.Hostname() == "" {
		return errors.New("image URL must have a host")
	}

	if len(v.allowed) == 0 {
		return nil
	}

	base, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return fmt.Errorf("resolve image host: %w", err)
	}
	if _, ok := v.allowed[base]; !ok {
		return ErrNotAllowed
	}
	return nil
}
