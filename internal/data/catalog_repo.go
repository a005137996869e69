package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/xgencloud/xgen-site/internal/data/pgxutil"
	"github.com/xgencloud/xgen-site/internal/domain/model"
)

// CatalogRepo provides read access to the partner and service catalogs.
type CatalogRepo struct {
	DB *sql.DB
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{DB: db}
}

// ListPartners returns all partners ordered by partnership age, oldest first.
func (r *CatalogRepo) ListPartners(ctx context.Context) ([]model.Partner, error) {
	var out []model.Partner
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, name, description, industry, partnership_since
			FROM partners
			ORDER BY partnership_since, name`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Partner])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return out, nil
}

// ListServices returns all service offerings in display order.
func (r *CatalogRepo) ListServices(ctx context.Context) ([]model.ServiceOffering, error) {
	var out []model.ServiceOffering
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, name, description, features
			FROM service_offerings
			ORDER BY display_order, name`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ServiceOffering])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list service offerings: %w", err)
	}
	return out, nil
}
