package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xgencloud/xgen-site/internal/data"
	"github.com/xgencloud/xgen-site/internal/domain/model"
	apperrors "github.com/xgencloud/xgen-site/internal/errors"
)

// fakeUserRepo is a hand-written in-memory UserRepository.
type fakeUserRepo struct {
	byEmail   map[string]*model.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (*model.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[email]; ok {
		return nil, data.ErrUserEmailExists
	}
	u := &model.User{ID: "u-" + email, Name: name, Email: email, PasswordHash: passwordHash}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, data.ErrUserNotFound
}

// fakeTokenIssuer records issued subjects and verifies by map lookup.
type fakeTokenIssuer struct {
	issued map[string]string // token -> subject
}

func newFakeTokenIssuer() *fakeTokenIssuer {
	return &fakeTokenIssuer{issued: map[string]string{}}
}

func (f *fakeTokenIssuer) Issue(subject string) (string, error) {
	token := "tok-" + subject
	f.issued[token] = subject
	return token, nil
}

func (f *fakeTokenIssuer) Verify(token string) (string, error) {
	subject, ok := f.issued[token]
	if !ok {
		return "", ErrTokenInvalid
	}
	return subject, nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeTokenIssuer) {
	users := newFakeUserRepo()
	tokens := newFakeTokenIssuer()
	svc := NewAuthService(AuthServiceOptions{
		Users:      users,
		Tokens:     tokens,
		BcryptCost: bcrypt.MinCost,
	})
	return svc, users, tokens
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name: "Asha Rao", Email: "Asha@Example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "asha@example.com", resp.User.Email)

	stored := users.byEmail["asha@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	req := &model.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.RegisterRequest{Name: "Other", Email: "asha@example.com", Password: "different1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Email already registered", err.Error())
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Email: "a@b.com", Password: "hunter22"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Register(context.Background(), nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &model.LoginRequest{Email: "ASHA@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Incorrect email or password", err.Error())
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	// Same message as a wrong password so the two cases are indistinguishable.
	assert.Equal(t, "Incorrect email or password", err.Error())
}

func TestAuthService_Profile(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &model.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"})
	require.NoError(t, err)

	user, err := svc.Profile(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha", user.Name)
}

func TestAuthService_Profile_BadToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Profile(context.Background(), "tok-forged")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Could not validate credentials", err.Error())
}

func TestAuthService_Profile_UserDeleted(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &model.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"})
	require.NoError(t, err)

	delete(users.byEmail, "asha@example.com")
	_, err = svc.Profile(ctx, resp.AccessToken)
	assert.True(t, apperrors.IsUnauthorized(err))
}
