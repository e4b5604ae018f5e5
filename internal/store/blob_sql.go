package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Martinsschnee/pbweb/internal/logger"
)

// sqlBlobStore is the SQL-backed implementation of [BlobStore]. It keeps
// every blob as one row of the "blobs" table, addressed by (store, key),
// and replaces the data column wholesale on every Put via an upsert.
//
// The same implementation serves PostgreSQL and SQLite; the two differ
// only in driver, placeholder format, and error classification, supplied
// by the backend-specific constructors.
type sqlBlobStore struct {
	db       *sql.DB
	builder  sq.StatementBuilderType
	classify func(err error) error
	logger   *logger.Logger
}

// Get returns the blob at (store, key), or [ErrBlobNotFound].
func (s *sqlBlobStore) Get(ctx context.Context, store, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("data").
		From("blobs").
		Where(sq.Eq{"store": store}).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlobNotFound
		}

		log.Err(err).Str("store", store).Str("key", key).Msg("blob read failed")
		return nil, s.classify(err)
	}

	return data, nil
}

// Put replaces the blob at (store, key) wholesale.
func (s *sqlBlobStore) Put(ctx context.Context, store, key string, data []byte) error {
	log := logger.FromContext(ctx)

	// The data column is TEXT. A []byte parameter would be sent by the
	// pgx driver as bytea, which Postgres refuses to assign to a text
	// column (SQLSTATE 42804), so the payload is bound as a string.
	query, args, err := s.builder.
		Insert("blobs").
		Columns("store", "key", "data", "updated_at").
		Values(store, key, string(data), time.Now().UTC()).
		Suffix("ON CONFLICT (store, key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("store", store).Str("key", key).Msg("blob write failed")
		return s.classify(err)
	}

	return nil
}

// Close releases the underlying database connection pool.
func (s *sqlBlobStore) Close() error {
	return s.db.Close()
}
