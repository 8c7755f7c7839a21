package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://carmodpicker.example.com").
	// Used for generating absolute links in verification and reset emails.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// StaticDir is the directory holding the built SPA bundle. When set,
	// page routes serve its index.html and /assets/ serves the bundle.
	StaticDir string `env:"APP_STATIC_DIR" envDefault:""`
}
