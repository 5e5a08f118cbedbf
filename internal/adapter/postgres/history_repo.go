package postgres

import (
	"context"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// LoadHistory returns all of the user's measurements. The relational encoding
// has no legacy shapes, so recovered is always false here.
func (d *DB) LoadHistory(ctx context.Context, username string) (domain.History, bool, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT day, weight_kg, height_cm, bmi, category FROM bmi_entries WHERE username = $1;",
		username,
	)
	if err != nil {
		return nil, false, domain.NewStorageError("load history", err)
	}
	defer rows.Close()

	h := domain.History{}
	for rows.Next() {
		var m domain.Measurement
		if err := rows.Scan(&m.Day, &m.WeightKg, &m.HeightCm, &m.BMI, &m.Category); err != nil {
			return nil, false, domain.NewStorageError("scan history", err)
		}
		h[m.Day] = m
	}
	if err := rows.Err(); err != nil {
		return nil, false, domain.NewStorageError("load history", err)
	}
	return h, false, nil
}

// SaveHistory rewrites the user's rows in one transaction, keeping the
// whole-collection-per-mutation guarantee uniform across backends.
func (d *DB) SaveHistory(ctx context.Context, username string, h domain.History) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStorageError("begin save history", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM bmi_entries WHERE username = $1;", username); err != nil {
		return domain.NewStorageError("clear history", err)
	}
	for _, m := range h.Entries() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO bmi_entries(username, day, weight_kg, height_cm, bmi, category) VALUES($1, $2, $3, $4, $5, $6);",
			username, m.Day, m.WeightKg, m.HeightCm, m.BMI, string(m.Category),
		); err != nil {
			return domain.NewStorageError("insert history row", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.NewStorageError("commit save history", err)
	}
	return nil
}
