package config

import "time"

// ConsoleConfig contains configuration for the terminal client.
type ConsoleConfig struct {
	// BaseURL is the root URL of the backend API the console talks to
	// (e.g., "http://localhost:8001"). Required: the console refuses to
	// start without it rather than issuing requests against an empty base.
	BaseURL string `env:"XGEN_BACKEND_URL"`

	// CarouselInterval is how often the partner carousel advances.
	CarouselInterval time.Duration `env:"XGEN_CAROUSEL_INTERVAL" envDefault:"3s"`

	// RequestTimeout bounds each authentication request. Expired requests
	// surface as a timeout outcome instead of hanging the dialog forever.
	RequestTimeout time.Duration `env:"XGEN_REQUEST_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to console configuration values.
func (c *ConsoleConfig) Sanitize() {
	if c.CarouselInterval <= 0 {
		c.CarouselInterval = 3 * time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
}
