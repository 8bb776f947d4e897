package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	repository "github.com/aaravmahajanofficial/food-cart/internal/repositories"
)

const MsgFavoriteRemoved = "Removed from favorites"

type FavoritesService interface {
	List(ctx context.Context) models.Result[[]models.FavoriteEntry]
	Add(ctx context.Context, food models.Food) models.Result[models.FavoriteEntry]
	Remove(ctx context.Context, foodID int) models.Result[string]
	IsFavorite(ctx context.Context, foodID int) models.Result[bool]
	Toggle(ctx context.Context, food models.Food) models.Result[bool]
	AddToCart(ctx context.Context, foodID int) models.Result[string]
}

type favoritesService struct {
	repo repository.FavoriteRepository
	cart CartService
	now  func() time.Time
}

func NewFavoritesService(repo repository.FavoriteRepository, cart CartService) FavoritesService {
	return &favoritesService{repo: repo, cart: cart, now: time.Now}
}

func (s *favoritesService) List(ctx context.Context) models.Result[[]models.FavoriteEntry] {
	favorites, err := s.repo.List(ctx)
	if err != nil {
		return models.Failure[[]models.FavoriteEntry](appErrors.DatabaseError("Failed to list favorites").WithError(err))
	}

	return models.Success(favorites)
}

func (s *favoritesService) Add(ctx context.Context, food models.Food) models.Result[models.FavoriteEntry] {
	entry := food.ToFavorite(s.now().UTC())

	if err := s.repo.Add(ctx, &entry); err != nil {
		return models.Failure[models.FavoriteEntry](appErrors.DatabaseError("Failed to add favorite").WithError(err))
	}

	middleware.LoggerFromContext(ctx).Info("Favorite added", slog.Int("food_id", food.ID))
	return models.Success(entry)
}

// Remove of a food that is not a favorite succeeds.
func (s *favoritesService) Remove(ctx context.Context, foodID int) models.Result[string] {
	if err := s.repo.Remove(ctx, foodID); err != nil {
		return models.Failure[string](appErrors.DatabaseError("Failed to remove favorite").WithError(err))
	}

	middleware.LoggerFromContext(ctx).Info("Favorite removed", slog.Int("food_id", foodID))
	return models.Success(MsgFavoriteRemoved)
}

func (s *favoritesService) IsFavorite(ctx context.Context, foodID int) models.Result[bool] {
	exists, err := s.repo.Exists(ctx, foodID)
	if err != nil {
		return models.Failure[bool](appErrors.DatabaseError("Failed to check favorite").WithError(err))
	}

	return models.Success(exists)
}

// Toggle flips the favorite state of food and returns the new state.
func (s *favoritesService) Toggle(ctx context.Context, food models.Food) models.Result[bool] {
	exists, err := s.repo.Exists(ctx, food.ID)
	if err != nil {
		return models.Failure[bool](appErrors.DatabaseError("Failed to check favorite").WithError(err))
	}

	if exists {
		if result := s.Remove(ctx, food.ID); result.IsError() {
			return models.Failure[bool](result.Err)
		}
		return models.Success(false)
	}

	if result := s.Add(ctx, food); result.IsError() {
		return models.Failure[bool](result.Err)
	}
	return models.Success(true)
}

// AddToCart promotes a favorite into the cart with AddDistinct semantics.
func (s *favoritesService) AddToCart(ctx context.Context, foodID int) models.Result[string] {
	entry, err := s.repo.Get(ctx, foodID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Failure[string](appErrors.NotFoundError("Favorite not found").WithError(err))
		}
		return models.Failure[string](appErrors.DatabaseError("Failed to read favorite").WithError(err))
	}

	return s.cart.AddDistinct(ctx, entry.ToFood(), 1)
}
