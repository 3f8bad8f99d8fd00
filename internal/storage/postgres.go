package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresStorage предоставляет справочник поставщиков в PostgreSQL.
type PostgresStorage struct {
	sqlDirectory
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(dsn string, logger *slog.Logger) (*PostgresStorage, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresStorageFromDB(db, logger), nil
}

// NewPostgresStorageFromDB оборачивает уже открытое подключение.
func NewPostgresStorageFromDB(db *sqlx.DB, logger *slog.Logger) *PostgresStorage {
	return &PostgresStorage{sqlDirectory{db: db, logger: logger, name: "postgres"}}
}

// InitSchema создает таблицу suppliers, если ее нет.
func (ps *PostgresStorage) InitSchema(ctx context.Context) error {
	return ps.initSchema(ctx, []string{
		`CREATE TABLE IF NOT EXISTS suppliers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			latitude DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90),
			longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180),
			phone TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			rating DOUBLE PRECISION CHECK (rating BETWEEN 0 AND 5),
			rating_count INTEGER NOT NULL DEFAULT 0,
			species TEXT NOT NULL CHECK (species IN ('dogs', 'cats', 'both')),
			delivery_available BOOLEAN NOT NULL DEFAULT FALSE,
			pickup_available BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_suppliers_country_state ON suppliers (country, state)`,
	})
}
