package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// GetByUsername retrieves a user, returning (nil, nil) when unknown.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var (
		u          domain.User
		lastWeight sql.NullFloat64
		lastHeight sql.NullFloat64
	)
	err := d.sql.QueryRowContext(ctx,
		"SELECT username, password, last_weight, last_height FROM users WHERE username = $1;",
		username,
	).Scan(&u.Username, &u.Password, &lastWeight, &lastHeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get user", err)
	}
	if lastWeight.Valid {
		u.LastWeightKg = &lastWeight.Float64
	}
	if lastHeight.Valid {
		u.LastHeightCm = &lastHeight.Float64
	}
	return &u, nil
}

// Create inserts a new user.
func (d *DB) Create(ctx context.Context, u *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users(username, password, last_weight, last_height, created_at) VALUES($1, $2, $3, $4, $5);",
		u.Username, u.Password, nullable(u.LastWeightKg), nullable(u.LastHeightCm), time.Now().UTC(),
	)
	if err != nil {
		return domain.NewStorageError("create user", err)
	}
	return nil
}

// Update overwrites the user's record.
func (d *DB) Update(ctx context.Context, u *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE users SET password = $2, last_weight = $3, last_height = $4 WHERE username = $1;",
		u.Username, u.Password, nullable(u.LastWeightKg), nullable(u.LastHeightCm),
	)
	if err != nil {
		return domain.NewStorageError("update user", err)
	}
	return nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
