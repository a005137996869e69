package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/xgencloud/xgen-site/internal/data/pgxutil"
	"github.com/xgencloud/xgen-site/internal/domain/model"
)

// ContactRepo provides database operations for contact form submissions.
type ContactRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewContactRepo creates a new ContactRepo with real time provider.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewContactRepoWithTimeProvider creates a new ContactRepo with a custom time provider (useful for tests).
func NewContactRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ContactRepo {
	return &ContactRepo{DB: db, timeProvider: tp}
}

// Create stores an inbound contact message. The request must be validated
// by the caller.
func (r *ContactRepo) Create(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	createdAt := r.timeProvider.Now().UTC()
	var out model.ContactMessage
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO contact_messages (name, email, message, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, email, message, created_at`,
			req.Name, req.Email, req.Message, createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ContactMessage])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return &out, nil
}
