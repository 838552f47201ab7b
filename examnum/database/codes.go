package database

import (
	"context"
	"fmt"
	"time"
)

type Code struct {
	ID        int       `db:"code_id"`
	Value     string    `db:"code_value"`
	Prefix    string    `db:"code_prefix"`
	CreatedAt time.Time `db:"code_created_at"`
}

// GetAllCodes returns every code ever issued, in issue order.
func (d *Database) GetAllCodes(ctx context.Context) ([]string, error) {
	query := `
		SELECT code_value
		FROM codes
		ORDER BY code_id ASC
	`

	var codes []string
	if err := d.db.SelectContext(ctx, &codes, query); err != nil {
		return nil, fmt.Errorf("failed to get codes: %w", err)
	}

	return codes, nil
}

// InsertCodes records newly issued codes for one batch.
func (d *Database) InsertCodes(ctx context.Context, prefix string, codes []string) error {
	if len(codes) == 0 {
		return nil
	}

	query := `
		INSERT INTO codes (code_value, code_prefix)
		VALUES (:code_value, :code_prefix)
	`

	rows := make([]Code, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, Code{
			Value:  code,
			Prefix: prefix,
		})
	}

	if _, err := d.db.NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to insert codes: %w", err)
	}

	return nil
}
