package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// NewPostgresBlobStore connects to PostgreSQL, applies the blobs table
// migration, and returns a [BlobStore] backed by it.
func NewPostgresBlobStore(ctx context.Context, cfg config.DB, log *logger.Logger) (*sqlBlobStore, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Msg("connected to database successfully")

	if err := migrations.Migrate(conn, migrations.DialectPostgres); err != nil {
		return nil, err
	}

	return &sqlBlobStore{
		db:       conn,
		builder:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classify: classifyPostgresError,
		logger:   log,
	}, nil
}

// classifyPostgresError maps driver-level PostgreSQL errors onto the
// store's sentinel errors.
func classifyPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: %w", ErrStoreNotMigrated, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
