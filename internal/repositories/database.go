package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/food-cart/internal/config"
	"github.com/aaravmahajanofficial/food-cart/internal/utils"

	_ "github.com/lib/pq"
)

// Schema for the device-local tables. The local cart mirror is a cache of the remote cart, never its source of truth.
const schema = `
CREATE TABLE IF NOT EXISTS favorite_foods (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	image    TEXT NOT NULL,
	price    INTEGER NOT NULL,
	added_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS cart_foods (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	image    TEXT NOT NULL,
	price    INTEGER NOT NULL,
	quantity INTEGER NOT NULL,
	username TEXT NOT NULL
);
`

type Repository struct {
	DB *sql.DB
}

func New(cfg *config.Config) (*Repository, FavoriteRepository, CartMirrorRepository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	postgresInstance := &Repository{DB: db}

	if err := postgresInstance.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	return postgresInstance, NewFavoriteRepo(db), NewCartMirrorRepo(db), nil
}

// Migrate creates the local tables when missing.
func (p *Repository) Migrate(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := p.DB.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
