package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgencloud/xgen-site/internal/domain/model"
	apperrors "github.com/xgencloud/xgen-site/internal/errors"
)

type fakeAuthService struct {
	registerFn func(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error)
	loginFn    func(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	profileFn  func(ctx context.Context, token string) (*model.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Profile(ctx context.Context, token string) (*model.User, error) {
	return f.profileFn(ctx, token)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthHandlers_Register(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(_ context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
			return &model.TokenResponse{
				AccessToken: "tok-123",
				TokenType:   "bearer",
				User:        model.User{Email: req.Email, Name: req.Name},
			}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "tok-123", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
}

func TestAuthHandlers_Register_Duplicate(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(context.Context, *model.RegisterRequest) (*model.TokenResponse, error) {
			return nil, apperrors.Conflict("Email already registered")
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"name":"A","email":"a@b.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, rec)["detail"])
}

func TestAuthHandlers_Register_MalformedJSON(t *testing.T) {
	h := &AuthHandlers{Svc: &fakeAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "detail")
}

func TestAuthHandlers_Login_BadCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(context.Context, *model.LoginRequest) (*model.TokenResponse, error) {
			return nil, apperrors.Unauthorized("Incorrect email or password")
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect email or password", decodeBody(t, rec)["detail"])
}

func TestAuthHandlers_Profile(t *testing.T) {
	svc := &fakeAuthService{
		profileFn: func(_ context.Context, token string) (*model.User, error) {
			require.Equal(t, "tok-123", token)
			return &model.User{Email: "asha@example.com", Name: "Asha"}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asha@example.com", decodeBody(t, rec)["email"])
}

func TestAuthHandlers_Profile_MissingHeader(t *testing.T) {
	h := &AuthHandlers{Svc: &fakeAuthService{}}

	for _, header := range []string{"", "Basic abc", "Bearer ", "bearer tok"} {
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.Profile(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Equal(t, "Could not validate credentials", decodeBody(t, rec)["detail"])
	}
}
