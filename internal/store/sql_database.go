package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is the process-scoped database handle shared by all repositories.
// It is created once in main and passed down explicitly.
type DB struct {
	*sql.DB
	x                  *sqlx.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	driver := "pgx"
	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == DialectSQLite {
		driver = "sqlite3"
		classifier = NewSQLiteErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		x:                  sqlx.NewDb(conn, driver),
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
	}
}

// NewConnect opens the database selected by cfg.DSN: "sqlite://<path>" and
// "file:<path>" use SQLite, anything else is handed to pgx.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if path, ok := sqlitePath(cfg.DSN); ok {
		cfg.DSN = path
		return NewConnectSQLite(ctx, cfg, log)
	}
	return NewConnectPostgres(ctx, cfg, log)
}

func sqlitePath(dsn string) (string, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return strings.TrimPrefix(dsn, "sqlite://"), true
	case strings.HasPrefix(dsn, "file:"):
		return dsn, true
	default:
		return "", false
	}
}

// Dialect reports the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns a squirrel statement builder with the placeholder format
// of the dialect.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Migrate applies the embedded migrations of the dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}
