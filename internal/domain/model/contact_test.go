package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequest_Validate(t *testing.T) {
	req := ContactRequest{Name: " Priya ", Email: "Priya@Example.com", Message: "  Tell me about cloud plans.  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Priya", req.Name)
	assert.Equal(t, "priya@example.com", req.Email)
	assert.Equal(t, "Tell me about cloud plans.", req.Message)
}

func TestContactRequest_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  ContactRequest
	}{
		{"empty name", ContactRequest{Email: "a@b.com", Message: "hi"}},
		{"empty email", ContactRequest{Name: "A", Message: "hi"}},
		{"empty message", ContactRequest{Name: "A", Email: "a@b.com", Message: "   "}},
		{"long message", ContactRequest{Name: "A", Email: "a@b.com", Message: strings.Repeat("m", 4001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}
