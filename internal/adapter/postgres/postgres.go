// Package postgres implements the domain repositories using PostgreSQL, for
// deployments that outgrow the JSON file store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (username TEXT PRIMARY KEY, password TEXT NOT NULL, last_weight DOUBLE PRECISION, last_height DOUBLE PRECISION, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS bmi_entries (username TEXT NOT NULL, day TEXT NOT NULL, weight_kg DOUBLE PRECISION NOT NULL, height_cm DOUBLE PRECISION NOT NULL, bmi DOUBLE PRECISION NOT NULL, category TEXT NOT NULL, PRIMARY KEY (username, day));",
		"CREATE INDEX IF NOT EXISTS idx_bmi_entries_username ON bmi_entries(username);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
