package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	req := RegisterRequest{Name: "  Asha Rao ", Email: " Asha@Example.COM ", Password: "hunter22"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Asha Rao", req.Name)
	assert.Equal(t, "asha@example.com", req.Email)
}

func TestRegisterRequest_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"empty name", RegisterRequest{Email: "a@b.com", Password: "hunter22"}},
		{"empty email", RegisterRequest{Name: "A", Password: "hunter22"}},
		{"no at sign", RegisterRequest{Name: "A", Email: "not-an-email", Password: "hunter22"}},
		{"trailing at", RegisterRequest{Name: "A", Email: "a@", Password: "hunter22"}},
		{"double at", RegisterRequest{Name: "A", Email: "a@@b.com", Password: "hunter22"}},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.com", Password: "abc"}},
		{"long password", RegisterRequest{Name: "A", Email: "a@b.com", Password: strings.Repeat("x", 73)}},
		{"long name", RegisterRequest{Name: strings.Repeat("n", 256), Email: "a@b.com", Password: "hunter22"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "USER@example.com", Password: "hunter22"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "user@example.com", req.Email)

	assert.Error(t, (&LoginRequest{Email: "user@example.com"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "hunter22"}).Validate())
}
