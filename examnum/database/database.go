package database

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/topi314/gomigrate"
	"github.com/topi314/gomigrate/drivers/postgres"

	"github.com/AndrewConway/make-exam-numbers/examnum/database/migrations"
)

type Config struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Enabled: %t\n Address: %s",
		c.Enabled,
		strings.Repeat("*", len(c.Address)),
	)
}

type Database struct {
	db *sqlx.DB
}

func New(ctx context.Context, cfg Config) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = gomigrate.Migrate(ctx, db, postgres.New, migrations.Migrations, gomigrate.WithoutDirectory()); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{
		db: db,
	}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}
