package config

import "time"

// Bcrypt cost bounds. Values outside this range are clamped by Sanitize.
const (
	minBcryptCost = 4
	maxBcryptCost = 15
)

// AuthConfig contains token and password-hashing configuration.
type AuthConfig struct {
	// TokenSecret is the HMAC key for signing access tokens.
	// Required: the server refuses to start without it.
	TokenSecret string `env:"AUTH_TOKEN_SECRET,required"`

	// TokenTTL is how long an issued access token stays valid.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"30m"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.BcryptCost < minBcryptCost {
		a.BcryptCost = minBcryptCost
	}
	if a.BcryptCost > maxBcryptCost {
		a.BcryptCost = maxBcryptCost
	}
	if a.TokenTTL <= 0 {
		a.TokenTTL = 30 * time.Minute
	}
}
