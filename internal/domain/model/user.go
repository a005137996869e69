//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxUserNameLen  = 255
	maxUserEmailLen = 255
	minPasswordLen  = 6
	maxPasswordLen  = 72 // bcrypt input limit
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"            db:"id"`
	Name         string    `json:"name"          db:"name"`
	Email        string    `json:"email"         db:"email"`
	PasswordHash string    `json:"-"             db:"password_hash"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates RegisterRequest and normalizes the email.
func (r *RegisterRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxUserNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	r.Name = name
	email, err := normalizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	if len(r.Password) > maxPasswordLen {
		return errors.New("password cannot exceed 72 bytes")
	}
	return nil
}

// LoginRequest is the payload for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates LoginRequest and normalizes the email.
func (r *LoginRequest) Validate() error {
	email, err := normalizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// TokenResponse is returned by login and register on success.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// normalizeEmail trims and lowercases an email address and applies a
// minimal shape check. Full RFC validation is deliberately out of scope.
func normalizeEmail(value string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		return "", errors.New("email is required and cannot be empty")
	}
	if utf8.RuneCountInString(email) > maxUserEmailLen {
		return "", errors.New("email cannot exceed 255 characters")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return "", errors.New("email must be a valid address")
	}
	return email, nil
}
