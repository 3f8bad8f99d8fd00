package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLiteStorage хранит справочник поставщиков во встроенной базе SQLite.
type SQLiteStorage struct {
	sqlDirectory
}

// OpenSQLite открывает базу, создавая каталог при необходимости.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_time_format=sqlite", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &SQLiteStorage{sqlDirectory{db: db, logger: logger, name: "sqlite"}}, nil
}

// InitSchema создает таблицу suppliers, если ее нет.
func (s *SQLiteStorage) InitSchema(ctx context.Context) error {
	return s.initSchema(ctx, []string{
		`CREATE TABLE IF NOT EXISTS suppliers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			rating REAL,
			rating_count INTEGER NOT NULL DEFAULT 0,
			species TEXT NOT NULL,
			delivery_available BOOLEAN NOT NULL DEFAULT 0,
			pickup_available BOOLEAN NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			updated_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_suppliers_country_state ON suppliers(country, state);`,
	})
}
