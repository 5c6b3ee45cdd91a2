package repository

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	ServiceType *ServiceTypeRepository
	Service     *FeedServiceRepository
	Feed        *FeedRepository
	DB          *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:manifold.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", withPragmas(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// journal mode is persistent in the database file, the rest is set per connection by the dsn
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("execute journal_mode pragma: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repositories{
		ServiceType: NewServiceTypeRepository(db),
		Service:     NewFeedServiceRepository(db),
		Feed:        NewFeedRepository(db),
		DB:          db,
	}, nil
}

// connPragmas are applied by the driver to every new pooled connection
var connPragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)", // 5 second timeout for locks
	"synchronous(normal)",
	"cache_size(-16000)", // 16MB cache
	"temp_store(memory)",
}

// withPragmas adds connection pragmas to the dsn, pragmas the dsn already sets are kept as is
func withPragmas(dsn string) string {
	var params []string
	for _, p := range connPragmas {
		name := p[:strings.IndexByte(p, '(')]
		if strings.Contains(dsn, "_pragma="+name+"(") {
			continue
		}
		params = append(params, "_pragma="+p)
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// runMigrations applies embedded migrations. The migrate instance is not closed
// because closing it closes the shared *sql.DB as well.
func runMigrations(db *sqlx.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// errCritical marks errors the repeater must not retry
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

func (e *criticalError) Is(target error) bool { return target == errCritical }

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// retryable classifies a write error for the repeater
func retryable(err error, op string) error {
	if err == nil {
		return nil
	}
	if isLockError(err) {
		return err // retry
	}
	return &criticalError{err: fmt.Errorf("%s: %w", op, err)}
}

// unwrapCritical strips the repeater marker so callers see the wrapped db error
func unwrapCritical(err error) error {
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// jsonText is a nullable JSON column stored as TEXT
type jsonText struct {
	Valid bool
	Raw   string
}

func toJSONText(v any) (jsonText, error) {
	if v == nil {
		return jsonText{}, nil
	}
	if m, ok := v.(map[string]any); ok && m == nil {
		return jsonText{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return jsonText{}, fmt.Errorf("marshal json column: %w", err)
	}
	return jsonText{Valid: true, Raw: string(b)}, nil
}

func (j jsonText) ptr() *string {
	if !j.Valid {
		return nil
	}
	return &j.Raw
}

func decodeJSON(raw *string) (any, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return nil, fmt.Errorf("unmarshal json column: %w", err)
	}
	return v, nil
}

func decodeJSONObject(raw *string) (map[string]any, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return nil, fmt.Errorf("unmarshal json object column: %w", err)
	}
	return v, nil
}
