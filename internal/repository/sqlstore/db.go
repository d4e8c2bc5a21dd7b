package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/replenish/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/semaphore"
)

const defaultMaxConcurrency = 10

type DB struct {
	*sqlx.DB
	sem *semaphore.Weighted
}

// NewDB opens a connection pool for cfg.Driver ("postgres", "pgx" or "sqlite3").
func NewDB(cfg *config.DatabaseConfig) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "postgres"
	}

	dsn, err := buildDSN(driver, cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	// Configure connection pool
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return Wrap(db, cfg.MaxConcurrency), nil
}

// Wrap adapts an open sqlx handle, limiting it to maxConcurrency queries in flight.
func Wrap(db *sqlx.DB, maxConcurrency int) *DB {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &DB{
		DB:  db,
		sem: semaphore.NewWeighted(int64(maxConcurrency)),
	}
}

func buildDSN(driver string, cfg *config.DatabaseConfig) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	switch driver {
	case "postgres", "pgx":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode), nil
	case "sqlite3":
		name := strings.TrimSpace(cfg.DBName)
		if name == "" {
			return "", fmt.Errorf("sqlite3 needs DB_URL or DB_NAME")
		}
		return "file:" + name + ".db", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// withSlot runs fn while holding one of the concurrency slots.
func (db *DB) withSlot(ctx context.Context, fn func() error) error {
	if err := db.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("could not acquire semaphore: %w", err)
	}
	defer db.sem.Release(1)

	return fn()
}
