package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/migrations"

	_ "github.com/mattn/go-sqlite3" // sqlite database/sql driver
)

// NewSQLiteBlobStore opens (creating if necessary) the SQLite database
// file, applies the blobs table migration, and returns a [BlobStore]
// backed by it. Intended for single-box deployments without a PostgreSQL
// instance.
func NewSQLiteBlobStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (*sqlBlobStore, error) {
	conn, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		log.Err(err).Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// sqlite allows exactly one writer; a single connection avoids
	// SQLITE_BUSY errors under concurrent requests.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting sqlite database (ping)")
		return nil, err
	}

	if err := migrations.Migrate(conn, migrations.DialectSQLite); err != nil {
		return nil, err
	}

	return &sqlBlobStore{
		db:       conn,
		builder:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classify: classifySQLiteError,
		logger:   log,
	}, nil
}

func classifySQLiteError(err error) error {
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %w", ErrStoreNotMigrated, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
