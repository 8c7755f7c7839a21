package config

import "strings"

// ImageConfig controls validation of user-supplied image URLs.
type ImageConfig struct {
	// AllowedHosts restricts image URLs to the given registrable domains
	// (eTLD+1, e.g. "imgur.com;cloudfront.net"). Empty means any https host.
	AllowedHosts []string `env:"ALLOWED_HOSTS" envDefault:"" envSeparator:";"`
}

// Sanitize normalizes allowlist entries, dropping empty values.
func (i *ImageConfig) Sanitize() {
	hosts := make([]string, 0, len(i.AllowedHosts))
	for _, h := range i.AllowedHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts = append(hosts, h)
		}
	}
	i.AllowedHosts = hosts
}
