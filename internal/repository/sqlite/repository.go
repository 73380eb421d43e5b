package sqlite

import (
	"context"
	"database/sql"
	"time"

	"say-to-plan/internal/errors"
	"say-to-plan/internal/repository"
	"say-to-plan/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options tunes the per-call deadlines of the repository.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// SQLiteRepository stores each owner's collection as one JSON row.
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

var (
	_ repository.Repository = (*SQLiteRepository)(nil)
	_ repository.Inspector  = (*SQLiteRepository)(nil)
)

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens dbPath and applies pending migrations.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// sqlite allows one writer; a single connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	ctx, cancel := withTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load returns the stored collection of ownerID, or an empty one.
func (r *SQLiteRepository) Load(ctx context.Context, ownerID string) ([]repository.TaskRecord, error) {
	key, err := repository.CollectionKey(ownerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT collection_key, owner_id, payload, updated_at
	FROM task_collections
	WHERE collection_key = ?`

	row, err := QueryOptional(ctx, r.db, query, ScanCollection, key)
	if err != nil {
		return nil, HandleStorageError("load collection", r.opts.QueryTimeout, err)
	}
	if row == nil {
		return []repository.TaskRecord{}, nil
	}
	if row.OwnerID != ownerID {
		return nil, errors.NewPermissionError("load", key)
	}

	return repository.DecodeCollection(row.Payload)
}

// Save upserts the whole collection of ownerID.
func (r *SQLiteRepository) Save(ctx context.Context, ownerID string, records []repository.TaskRecord) error {
	key, err := repository.CollectionKey(ownerID)
	if err != nil {
		return err
	}

	payload, err := repository.EncodeCollection(records)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO task_collections (collection_key, owner_id, payload, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(collection_key) DO UPDATE SET
		payload = excluded.payload,
		updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, key, ownerID, string(payload), FormatTimeForDB(r.now())); err != nil {
		return HandleStorageError("save collection", r.opts.WriteTimeout, err)
	}
	return nil
}

// SchemaVersion reports the applied migration version.
func (r *SQLiteRepository) SchemaVersion(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	v, err := migrations.CurrentVersion(ctx, r.db)
	if err != nil {
		return 0, HandleStorageError("read schema version", r.opts.QueryTimeout, err)
	}
	return v, nil
}

// Owners lists owners with a stored collection, most recently updated first.
func (r *SQLiteRepository) Owners(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT collection_key, owner_id, payload, updated_at
	FROM task_collections
	ORDER BY updated_at DESC`

	rows, err := QueryMultiple(ctx, r.db, query, ScanCollections)
	if err != nil {
		return nil, HandleStorageError("list collections", r.opts.QueryTimeout, err)
	}

	owners := make([]string, 0, len(rows))
	for _, row := range rows {
		owners = append(owners, row.OwnerID)
	}
	return owners, nil
}
