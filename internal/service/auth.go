package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/xgencloud/xgen-site/internal/data"
	"github.com/xgencloud/xgen-site/internal/domain/model"
	apperrors "github.com/xgencloud/xgen-site/internal/errors"
	"github.com/xgencloud/xgen-site/internal/ports"
)

const (
	msgEmailRegistered   = "Email already registered"
	msgBadCredentials    = "Incorrect email or password"
	msgTokenNotValidated = "Could not validate credentials"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users      ports.UserRepository
	Tokens     ports.TokenIssuer
	BcryptCost int
}

// AuthService orchestrates account registration, login, and profile lookup.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenIssuer
	bcryptCost int
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      opts.Users,
		tokens:     opts.Tokens,
		bcryptCost: cost,
	}
}

// Register creates an account and returns a bearer token for it.
// A duplicate email yields a Conflict error.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	if req == nil {
		return nil, apperrors.Validation("register request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.Name, req.Email, string(hash))
	if err != nil {
		if errors.Is(err, data.ErrUserEmailExists) {
			return nil, apperrors.Conflict(msgEmailRegistered)
		}
		return nil, apperrors.MapDBError(err)
	}

	return s.tokenResponse(user)
}

// Login authenticates an account and returns a bearer token for it.
// Unknown emails and wrong passwords yield the same Unauthorized error.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if req == nil {
		return nil, apperrors.Validation("login request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.Unauthorized(msgBadCredentials)
		}
		return nil, apperrors.MapDBError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(msgBadCredentials)
	}

	return s.tokenResponse(user)
}

// Profile resolves a bearer token to its user.
func (s *AuthService) Profile(ctx context.Context, token string) (*model.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.Unauthorized(msgTokenNotValidated)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.Unauthorized(msgTokenNotValidated)
		}
		return nil, apperrors.MapDBError(err)
	}
	return user, nil
}

func (s *AuthService) tokenResponse(user *model.User) (*model.TokenResponse, error) {
	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
	}, nil
}
