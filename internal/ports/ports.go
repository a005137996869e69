// Package ports defines interfaces (hexagonal ports) for persistence and
// token issuance. Implementations live in internal/data and
// internal/service; orchestration in internal/service.
package ports

import (
	"context"
	"time"

	"github.com/xgencloud/xgen-site/internal/domain/model"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// Create inserts a user with an already-hashed password.
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	// GetByEmail retrieves a user by normalized email, including the password hash.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ContactRepository stores inbound contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error)
}

// CatalogRepository reads the partner and service catalogs.
type CatalogRepository interface {
	ListPartners(ctx context.Context) ([]model.Partner, error)
	ListServices(ctx context.Context) ([]model.ServiceOffering, error)
}

// CacheRepository is a byte-oriented cache with TTL semantics.
// Get returns (nil, nil) for a missing key.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}

// TokenIssuer mints and verifies bearer tokens for authenticated sessions.
type TokenIssuer interface {
	// Issue mints a signed token whose subject is the user's email.
	Issue(subject string) (string, error)
	// Verify checks the token signature and expiry and returns the subject.
	Verify(token string) (string, error)
}
