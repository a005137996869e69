package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgencloud/xgen-site/config"
	"github.com/xgencloud/xgen-site/internal/domain/model"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := &fakeAuthService{
		loginFn: func(context.Context, *model.LoginRequest) (*model.TokenResponse, error) {
			return &model.TokenResponse{AccessToken: "tok", TokenType: "bearer"}, nil
		},
	}
	handler, err := NewRouter(RouterServices{
		Auth:    svc,
		Contact: &fakeContactService{submitFn: func(_ context.Context, r *model.ContactRequest) (*model.ContactMessage, error) { return &model.ContactMessage{}, nil }},
		Catalog: &fakeCatalogService{
			partners: []model.Partner{{Name: "Jio"}},
			services: []model.ServiceOffering{{Name: "Cloud Solutions", Features: []string{"Cloud migration"}}},
		},
		HTTP:   config.HTTPConfig{AllowedOrigins: []string{"https://app.example.com"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return handler
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSDisallowedOrigin(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_HomePageRenders(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Xgen Cloud")
	assert.Contains(t, body, "Cloud Solutions")
	assert.Contains(t, body, "Jio")
}

func TestRouter_UnknownPathIs404(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
