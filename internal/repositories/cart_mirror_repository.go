package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/aaravmahajanofficial/food-cart/internal/utils"
)

// CartMirrorRepository keeps a local copy of the last remote cart listing.
type CartMirrorRepository interface {
	Upsert(ctx context.Context, entry *models.CartEntry) error
	Get(ctx context.Context, entryID int) (*models.CartEntry, error)
	Delete(ctx context.Context, entryID int) error
	Clear(ctx context.Context) error
	ReplaceAll(ctx context.Context, entries []models.CartEntry) error
	List(ctx context.Context) ([]models.CartEntry, error)
	TotalPrice(ctx context.Context) (int, error)
	TotalQuantity(ctx context.Context) (int, error)
}

type cartMirrorRepository struct {
	DB *sql.DB
}

func NewCartMirrorRepo(db *sql.DB) CartMirrorRepository {
	return &cartMirrorRepository{DB: db}
}

const upsertCartEntryQuery = `
		INSERT INTO cart_foods (id, name, image, price, quantity, username)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, image = EXCLUDED.image, price = EXCLUDED.price,
			quantity = EXCLUDED.quantity, username = EXCLUDED.username
	`

func (r *cartMirrorRepository) Upsert(ctx context.Context, entry *models.CartEntry) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, upsertCartEntryQuery,
		entry.ID, entry.Name, entry.Image, entry.Price, entry.Quantity, entry.Username)
	if err != nil {
		return fmt.Errorf("failed to upsert cart entry: %w", err)
	}

	return nil
}

// Get returns sql.ErrNoRows when the entry is not mirrored.
func (r *cartMirrorRepository) Get(ctx context.Context, entryID int) (*models.CartEntry, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, image, price, quantity, username
		FROM cart_foods
		WHERE id = $1
	`

	entry := &models.CartEntry{}

	err := r.DB.QueryRowContext(dbCtx, query, entryID).
		Scan(&entry.ID, &entry.Name, &entry.Image, &entry.Price, &entry.Quantity, &entry.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return entry, nil
}

func (r *cartMirrorRepository) Delete(ctx context.Context, entryID int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_foods WHERE id = $1`, entryID); err != nil {
		return fmt.Errorf("failed to delete cart entry: %w", err)
	}

	return nil
}

func (r *cartMirrorRepository) Clear(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_foods`); err != nil {
		return fmt.Errorf("failed to clear cart mirror: %w", err)
	}

	return nil
}

// ReplaceAll swaps the mirror contents for entries in one transaction.
func (r *cartMirrorRepository) ReplaceAll(ctx context.Context, entries []models.CartEntry) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM cart_foods`); err != nil {
		return fmt.Errorf("failed to clear cart mirror: %w", err)
	}

	for _, entry := range entries {
		_, err := tx.ExecContext(dbCtx, upsertCartEntryQuery,
			entry.ID, entry.Name, entry.Image, entry.Price, entry.Quantity, entry.Username)
		if err != nil {
			return fmt.Errorf("failed to insert cart entry %d: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart mirror: %w", err)
	}

	return nil
}

func (r *cartMirrorRepository) List(ctx context.Context) ([]models.CartEntry, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, image, price, quantity, username
		FROM cart_foods
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart mirror: %w", err)
	}
	defer rows.Close()

	entries := []models.CartEntry{}

	for rows.Next() {
		var entry models.CartEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Image, &entry.Price, &entry.Quantity, &entry.Username); err != nil {
			return nil, fmt.Errorf("failed to scan cart entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart mirror: %w", err)
	}

	return entries, nil
}

func (r *cartMirrorRepository) TotalPrice(ctx context.Context) (int, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(price * quantity), 0) FROM cart_foods`)
}

func (r *cartMirrorRepository) TotalQuantity(ctx context.Context) (int, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM cart_foods`)
}

func (r *cartMirrorRepository) sum(ctx context.Context, query string) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum cart mirror: %w", err)
	}

	return total, nil
}
