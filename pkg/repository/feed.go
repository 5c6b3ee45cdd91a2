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

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID                        string    `db:"id"`
	ServiceID                 string    `db:"service_id"`
	Topic                     string    `db:"topic"`
	Title                     string    `db:"title"`
	Summary                   string    `db:"summary"`
	ConstantParams            *string   `db:"constant_params"`
	VariableParamsSchema      *string   `db:"variable_params_schema"`
	ItemsHaveIdentity         bool      `db:"items_have_identity"`
	ItemsHaveSpatialDimension bool      `db:"items_have_spatial_dimension"`
	ItemTemporalProperty      string    `db:"item_temporal_property"`
	ItemPrimaryProperty       string    `db:"item_primary_property"`
	ItemSecondaryProperty     string    `db:"item_secondary_property"`
	UpdateFrequencySeconds    int       `db:"update_frequency_seconds"`
	MapStyle                  *string   `db:"map_style"`
	CreatedAt                 time.Time `db:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// Create inserts a new feed with a fresh id, ID and timestamps of the argument are ignored
func (r *FeedRepository) Create(ctx context.Context, feed domain.Feed) (*domain.Feed, error) {
	now := time.Now().UTC()
	feed.ID = uuid.NewString()
	feed.CreatedAt, feed.UpdatedAt = now, now
	row, err := fromDomainFeed(feed)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO feeds (id, service_id, topic, title, summary, constant_params, variable_params_schema,
			items_have_identity, items_have_spatial_dimension, item_temporal_property, item_primary_property,
			item_secondary_property, update_frequency_seconds, map_style, created_at, updated_at)
		VALUES (:id, :service_id, :topic, :title, :summary, :constant_params, :variable_params_schema,
			:items_have_identity, :items_have_spatial_dimension, :item_temporal_property, :item_primary_property,
			:item_secondary_property, :update_frequency_seconds, :map_style, :created_at, :updated_at)
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return retryable(err, "create feed")
	}, errCritical)
	if err != nil {
		return nil, unwrapCritical(err)
	}
	return &feed, nil
}

// FindByID retrieves a feed by id, nil if not found
func (r *FeedRepository) FindByID(ctx context.Context, id string) (*domain.Feed, error) {
	var row feedSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get feed %s: %w", id, err)
	}
	return row.toDomain()
}

// FindAll retrieves all feeds ordered by title
func (r *FeedRepository) FindAll(ctx context.Context) ([]domain.Feed, error) {
	var rows []feedSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM feeds ORDER BY title, id"); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	return toDomainFeeds(rows)
}

// FindFeedsByIDs retrieves the feeds with the given ids, missing ids are skipped
func (r *FeedRepository) FindFeedsByIDs(ctx context.Context, ids []string) ([]domain.Feed, error) {
	if len(ids) == 0 {
		return []domain.Feed{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM feeds WHERE id IN (?) ORDER BY title, id", ids)
	if err != nil {
		return nil, fmt.Errorf("build feeds by ids query: %w", err)
	}
	var rows []feedSQL
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get feeds by ids: %w", err)
	}
	return toDomainFeeds(rows)
}

// Update replaces all mutable attributes of a stored feed, nil if not found.
// Service and topic are never changed.
func (r *FeedRepository) Update(ctx context.Context, feed domain.Feed) (*domain.Feed, error) {
	feed.UpdatedAt = time.Now().UTC()
	row, err := fromDomainFeed(feed)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE feeds SET title = :title, summary = :summary, constant_params = :constant_params,
			variable_params_schema = :variable_params_schema, items_have_identity = :items_have_identity,
			items_have_spatial_dimension = :items_have_spatial_dimension,
			item_temporal_property = :item_temporal_property, item_primary_property = :item_primary_property,
			item_secondary_property = :item_secondary_property,
			update_frequency_seconds = :update_frequency_seconds, map_style = :map_style, updated_at = :updated_at
		WHERE id = :id
	`
	var affected int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return retryable(err, "update feed")
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
	return r.FindByID(ctx, feed.ID)
}

// RemoveByID deletes a feed
func (r *FeedRepository) RemoveByID(ctx context.Context, id string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
		return retryable(err, "delete feed")
	}, errCritical)
	return unwrapCritical(err)
}

func fromDomainFeed(f domain.Feed) (*feedSQL, error) {
	constant, err := toJSONText(f.ConstantParams)
	if err != nil {
		return nil, fmt.Errorf("encode constant params: %w", err)
	}
	variable, err := toJSONText(f.VariableParamsSchema)
	if err != nil {
		return nil, fmt.Errorf("encode variable params schema: %w", err)
	}
	style, err := toJSONText(f.MapStyle)
	if err != nil {
		return nil, fmt.Errorf("encode map style: %w", err)
	}
	return &feedSQL{
		ID:                        f.ID,
		ServiceID:                 f.Service,
		Topic:                     f.Topic,
		Title:                     f.Title,
		Summary:                   f.Summary,
		ConstantParams:            constant.ptr(),
		VariableParamsSchema:      variable.ptr(),
		ItemsHaveIdentity:         f.ItemsHaveIdentity,
		ItemsHaveSpatialDimension: f.ItemsHaveSpatialDimension,
		ItemTemporalProperty:      f.ItemTemporalProperty,
		ItemPrimaryProperty:       f.ItemPrimaryProperty,
		ItemSecondaryProperty:     f.ItemSecondaryProperty,
		UpdateFrequencySeconds:    f.UpdateFrequencySeconds,
		MapStyle:                  style.ptr(),
		CreatedAt:                 f.CreatedAt,
		UpdatedAt:                 f.UpdatedAt,
	}, nil
}

// toDomain converts feedSQL to domain.Feed
func (f feedSQL) toDomain() (*domain.Feed, error) {
	constant, err := decodeJSONObject(f.ConstantParams)
	if err != nil {
		return nil, fmt.Errorf("decode constant params of feed %s: %w", f.ID, err)
	}
	variable, err := decodeJSONObject(f.VariableParamsSchema)
	if err != nil {
		return nil, fmt.Errorf("decode variable params schema of feed %s: %w", f.ID, err)
	}
	style, err := decodeJSONObject(f.MapStyle)
	if err != nil {
		return nil, fmt.Errorf("decode map style of feed %s: %w", f.ID, err)
	}
	return &domain.Feed{
		ID:                        f.ID,
		Service:                   f.ServiceID,
		Topic:                     f.Topic,
		Title:                     f.Title,
		Summary:                   f.Summary,
		ConstantParams:            constant,
		VariableParamsSchema:      variable,
		ItemsHaveIdentity:         f.ItemsHaveIdentity,
		ItemsHaveSpatialDimension: f.ItemsHaveSpatialDimension,
		ItemTemporalProperty:      f.ItemTemporalProperty,
		ItemPrimaryProperty:       f.ItemPrimaryProperty,
		ItemSecondaryProperty:     f.ItemSecondaryProperty,
		UpdateFrequencySeconds:    f.UpdateFrequencySeconds,
		MapStyle:                  style,
		CreatedAt:                 f.CreatedAt,
		UpdatedAt:                 f.UpdatedAt,
	}, nil
}

func toDomainFeeds(rows []feedSQL) ([]domain.Feed, error) {
	res := make([]domain.Feed, 0, len(rows))
	for _, row := range rows {
		f, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *f)
	}
	return res, nil
}
