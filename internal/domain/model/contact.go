package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxContactMessageLen = 4000
)

// ContactMessage is a stored inbound inquiry from the contact form.
type ContactMessage struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Message   string    `json:"message"    db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ContactRequest is the payload for submitting an inquiry.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate validates ContactRequest and normalizes the email.
func (r *ContactRequest) Validate() error {
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
	message := strings.TrimSpace(r.Message)
	if message == "" {
		return errors.New("message is required and cannot be empty")
	}
	if utf8.RuneCountInString(message) > maxContactMessageLen {
		return errors.New("message cannot exceed 4000 characters")
	}
	r.Message = message
	return nil
}
