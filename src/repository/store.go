// Package repository persists the dashboard's resources in PostgreSQL or
// SQLite through database/sql.
package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"storeadmin/src/app"
	cfg "storeadmin/src/configuration"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLDB implements app.Repository.
type SQLDB struct {
	db     *sql.DB
	driver string
}

var _ app.Repository = (*SQLDB)(nil)

type scanner interface {
	Scan(dest ...any) error
}

// NewDataBase opens the database described by config and applies the schema.
func NewDataBase(config *cfg.Properties) (*SQLDB, error) {
	if config == nil {
		return nil, fmt.Errorf("config is not valid")
	}
	return Open(config.Database.Driver, config.Database.URL)
}

// Open connects with driver "postgres" or "sqlite". For sqlite, url is a
// file path or ":memory:".
func Open(driver, url string) (*SQLDB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case cfg.DatabaseDriverPostgres:
		db, err = sql.Open("pgx", url)
	case cfg.DatabaseDriverSQLite:
		db, err = sql.Open("sqlite", url)
		if err == nil {
			// One connection keeps an in-memory database alive and
			// serialises writers.
			db.SetMaxOpenConns(1)
			db.SetMaxIdleConns(1)
			db.SetConnMaxLifetime(0)
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	s := &SQLDB{db: db, driver: driver}
	if driver == cfg.DatabaseDriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Printf("[repository] connected to %s database", driver)
	return s, nil
}

func (s *SQLDB) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLDB) migrate(ctx context.Context) error {
	content, err := migrations.ReadFile("migrations/" + s.driver + ".sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	for _, statement := range strings.Split(string(content), ";") {
		if strings.TrimSpace(statement) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}

// q rewrites ? placeholders into $n for postgres.
func (s *SQLDB) q(query string) string {
	if s.driver != cfg.DatabaseDriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// inTx runs fn in a transaction and commits when it returns nil.
func (s *SQLDB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// noRecord maps sql.ErrNoRows to app.ErrNoRecord.
func noRecord(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return app.ErrNoRecord
	}
	return err
}

// affectedOne returns app.ErrNoRecord when a write touched no row.
func affectedOne(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return app.ErrNoRecord
	}
	return nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
