package config

import "strings"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8001"`

	// BaseURL is the base URL of the application (e.g., "https://xgencloud.example.com").
	// Used for generating absolute URLs in rendered pages.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8001"`

	// AllowedOrigins is the list of origins permitted by the CORS
	// middleware. "*" allows any origin (development only).
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"*" envSeparator:";"`
}

// AllowsOrigin reports whether the given request origin is permitted.
func (h *HTTPConfig) AllowsOrigin(origin string) bool {
	for _, allowed := range h.AllowedOrigins {
		if allowed == "*" {
			return true
		}
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
