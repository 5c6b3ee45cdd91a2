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

// FeedServiceRepository handles feed service database operations
type FeedServiceRepository struct {
	db *sqlx.DB
}

// feedServiceSQL represents a feed service for SQL operations
type feedServiceSQL struct {
	ID            string    `db:"id"`
	ServiceTypeID string    `db:"service_type_id"`
	Title         string    `db:"title"`
	Summary       string    `db:"summary"`
	Config        *string   `db:"config"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// NewFeedServiceRepository creates a new feed service repository
func NewFeedServiceRepository(db *sqlx.DB) *FeedServiceRepository {
	return &FeedServiceRepository{db: db}
}

// Create persists a new service with a fresh id, ID and timestamps of the argument are ignored
func (r *FeedServiceRepository) Create(ctx context.Context, svc domain.FeedService) (*domain.FeedService, error) {
	cfg, err := toJSONText(svc.Config)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	svc.ID = uuid.NewString()
	svc.CreatedAt, svc.UpdatedAt = now, now

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO feed_services (id, service_type_id, title, summary, config, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			svc.ID, svc.ServiceType, svc.Title, svc.Summary, cfg.ptr(), now, now)
		return retryable(err, "create feed service")
	}, errCritical)
	if err != nil {
		return nil, unwrapCritical(err)
	}
	return &svc, nil
}

// FindAll returns all services ordered by title
func (r *FeedServiceRepository) FindAll(ctx context.Context) ([]domain.FeedService, error) {
	var rows []feedServiceSQL
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM feed_services ORDER BY title, id`); err != nil {
		return nil, fmt.Errorf("get feed services: %w", err)
	}
	res := make([]domain.FeedService, 0, len(rows))
	for _, row := range rows {
		svc, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *svc)
	}
	return res, nil
}

// FindByID returns the service, nil if not found
func (r *FeedServiceRepository) FindByID(ctx context.Context, id string) (*domain.FeedService, error) {
	var row feedServiceSQL
	err := r.db.GetContext(ctx, &row, `SELECT * FROM feed_services WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get feed service %s: %w", id, err)
	}
	return row.toDomain()
}

// Update replaces title, summary and config of an existing service, nil if not found.
// The service type is never changed.
func (r *FeedServiceRepository) Update(ctx context.Context, svc domain.FeedService) (*domain.FeedService, error) {
	cfg, err := toJSONText(svc.Config)
	if err != nil {
		return nil, err
	}
	var affected int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			UPDATE feed_services SET title = ?, summary = ?, config = ?, updated_at = ?
			WHERE id = ?`,
			svc.Title, svc.Summary, cfg.ptr(), time.Now().UTC(), svc.ID)
		if err != nil {
			return retryable(err, "update feed service")
		}
		affected, err = res.RowsAffected()
		return retryable(err, "get affected rows")
	}, errCritical)
	if err != nil {
		return nil, unwrapCritical(err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, svc.ID)
}

// RemoveByID deletes the service and, by cascade, its feeds
func (r *FeedServiceRepository) RemoveByID(ctx context.Context, id string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM feed_services WHERE id = ?`, id)
		return retryable(err, "delete feed service")
	}, errCritical)
	return unwrapCritical(err)
}

func (s feedServiceSQL) toDomain() (*domain.FeedService, error) {
	cfg, err := decodeJSON(s.Config)
	if err != nil {
		return nil, fmt.Errorf("decode config of service %s: %w", s.ID, err)
	}
	return &domain.FeedService{
		ID:          s.ID,
		ServiceType: s.ServiceTypeID,
		Title:       s.Title,
		Summary:     s.Summary,
		Config:      cfg,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}
