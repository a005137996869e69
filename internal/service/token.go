package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

// ErrTokenInvalid is returned when a token fails signature or expiry checks.
var ErrTokenInvalid = errors.New("token is invalid or expired")

// TokenService mints and verifies HS256-signed JWTs. The subject claim
// carries the user's email.
type TokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider func() time.Time
}

// NewTokenService constructs a TokenService with the given signing secret and token lifetime.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl, timeProvider: time.Now}
}

// NewTokenServiceWithClock constructs a TokenService with a custom clock (useful for tests).
func NewTokenServiceWithClock(secret []byte, ttl time.Duration, now func() time.Time) *TokenService {
	return &TokenService{secret: secret, ttl: ttl, timeProvider: now}
}

// Issue mints a signed token whose subject is the user's email.
func (s *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: s.secret},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("create signer: %w", err)
	}

	now := s.timeProvider()
	claims := jwt.Claims{
		Subject:  subject,
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks the token signature and expiry and returns the subject.
func (s *TokenService) Verify(token string) (string, error) {
	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return "", ErrTokenInvalid
	}

	var claims jwt.Claims
	if err := parsed.Claims(s.secret, &claims); err != nil {
		return "", ErrTokenInvalid
	}
	if err := claims.Validate(jwt.Expected{Time: s.timeProvider()}); err != nil {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
