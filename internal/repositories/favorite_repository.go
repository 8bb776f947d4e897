package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/aaravmahajanofficial/food-cart/internal/utils"
)

type FavoriteRepository interface {
	Add(ctx context.Context, entry *models.FavoriteEntry) error
	Remove(ctx context.Context, foodID int) error
	Exists(ctx context.Context, foodID int) (bool, error)
	Get(ctx context.Context, foodID int) (*models.FavoriteEntry, error)
	List(ctx context.Context) ([]models.FavoriteEntry, error)
	Clear(ctx context.Context) error
}

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepo(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{DB: db}
}

// Add upserts by food id. A zero AddedAt is stamped with the current time.
func (r *favoriteRepository) Add(ctx context.Context, entry *models.FavoriteEntry) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO favorite_foods (id, name, image, price, added_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, image = EXCLUDED.image, price = EXCLUDED.price, added_at = EXCLUDED.added_at
	`

	if _, err := r.DB.ExecContext(dbCtx, query, entry.FoodID, entry.Name, entry.Image, entry.Price, entry.AddedAt); err != nil {
		return fmt.Errorf("failed to upsert favorite: %w", err)
	}

	return nil
}

// Remove of an absent id is a no-op.
func (r *favoriteRepository) Remove(ctx context.Context, foodID int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM favorite_foods WHERE id = $1`

	if _, err := r.DB.ExecContext(dbCtx, query, foodID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, foodID int) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM favorite_foods WHERE id = $1)`

	var exists bool
	if err := r.DB.QueryRowContext(dbCtx, query, foodID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// Get returns sql.ErrNoRows when the food is not a favorite.
func (r *favoriteRepository) Get(ctx context.Context, foodID int) (*models.FavoriteEntry, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, image, price, added_at
		FROM favorite_foods
		WHERE id = $1
	`

	entry := &models.FavoriteEntry{}

	err := r.DB.QueryRowContext(dbCtx, query, foodID).Scan(&entry.FoodID, &entry.Name, &entry.Image, &entry.Price, &entry.AddedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return entry, nil
}

// List returns favorites, most recently added first.
func (r *favoriteRepository) List(ctx context.Context) ([]models.FavoriteEntry, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, image, price, added_at
		FROM favorite_foods
		ORDER BY added_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.FavoriteEntry{}

	for rows.Next() {
		var entry models.FavoriteEntry
		if err := rows.Scan(&entry.FoodID, &entry.Name, &entry.Image, &entry.Price, &entry.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}

func (r *favoriteRepository) Clear(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM favorite_foods`); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	return nil
}
