package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/manifold/pkg/domain"
)

// ServiceTypeRepository persists service type identities
type ServiceTypeRepository struct {
	db *sqlx.DB
}

type serviceTypeSQL struct {
	ID                  string    `db:"id"`
	ModuleName          string    `db:"module_name"`
	PluginServiceTypeID string    `db:"plugin_service_type_id"`
	CreatedAt           time.Time `db:"created_at"`
}

// NewServiceTypeRepository creates a new service type repository
func NewServiceTypeRepository(db *sqlx.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{db: db}
}

// FindOrCreateIdentity returns the identity of moduleName/pluginServiceTypeID, minting it on first use.
// Concurrent callers converge on one row through the unique constraint.
func (r *ServiceTypeRepository) FindOrCreateIdentity(ctx context.Context, moduleName, pluginServiceTypeID string) (domain.FeedServiceTypeIdentity, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO feed_service_types (id, module_name, plugin_service_type_id, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(module_name, plugin_service_type_id) DO NOTHING`,
			uuid.NewString(), moduleName, pluginServiceTypeID, time.Now().UTC())
		return retryable(err, "insert service type identity")
	}, errCritical)
	if err != nil {
		return domain.FeedServiceTypeIdentity{}, unwrapCritical(err)
	}

	var row serviceTypeSQL
	err = r.db.GetContext(ctx, &row,
		`SELECT * FROM feed_service_types WHERE module_name = ? AND plugin_service_type_id = ?`,
		moduleName, pluginServiceTypeID)
	if err != nil {
		return domain.FeedServiceTypeIdentity{}, fmt.Errorf("get service type identity: %w", err)
	}
	return row.toDomain(), nil
}

// ListIdentities returns all persisted identities ordered by creation
func (r *ServiceTypeRepository) ListIdentities(ctx context.Context) ([]domain.FeedServiceTypeIdentity, error) {
	var rows []serviceTypeSQL
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM feed_service_types ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("list service type identities: %w", err)
	}
	res := make([]domain.FeedServiceTypeIdentity, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// GetIdentity returns the identity by id, nil if not found
func (r *ServiceTypeRepository) GetIdentity(ctx context.Context, id string) (*domain.FeedServiceTypeIdentity, error) {
	var row serviceTypeSQL
	err := r.db.GetContext(ctx, &row, `SELECT * FROM feed_service_types WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service type identity %s: %w", id, err)
	}
	res := row.toDomain()
	return &res, nil
}

func (s serviceTypeSQL) toDomain() domain.FeedServiceTypeIdentity {
	return domain.FeedServiceTypeIdentity{
		ID:                  s.ID,
		ModuleName:          s.ModuleName,
		PluginServiceTypeID: s.PluginServiceTypeID,
		CreatedAt:           s.CreatedAt,
	}
}
