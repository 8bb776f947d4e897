package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) AddDistinct(ctx context.Context, food models.Food, quantity int) models.Result[string] {
	args := m.Called(ctx, food, quantity)
	return args.Get(0).(models.Result[string])
}

func (m *CartService) AddOrReplace(ctx context.Context, food models.Food, quantity int) models.Result[string] {
	args := m.Called(ctx, food, quantity)
	return args.Get(0).(models.Result[string])
}

func (m *CartService) SetQuantity(ctx context.Context, entry models.CartEntry, newQuantity int) models.Result[string] {
	args := m.Called(ctx, entry, newQuantity)
	return args.Get(0).(models.Result[string])
}

func (m *CartService) SetQuantityByID(ctx context.Context, entryID int, newQuantity int) models.Result[string] {
	args := m.Called(ctx, entryID, newQuantity)
	return args.Get(0).(models.Result[string])
}

func (m *CartService) MirrorSnapshot(ctx context.Context) models.Result[models.CartSummary] {
	args := m.Called(ctx)
	return args.Get(0).(models.Result[models.CartSummary])
}

func (m *CartService) Remove(ctx context.Context, entryID int) models.Result[string] {
	args := m.Called(ctx, entryID)
	return args.Get(0).(models.Result[string])
}

func (m *CartService) ClearCart(ctx context.Context) models.Result[models.ClearReport] {
	args := m.Called(ctx)
	return args.Get(0).(models.Result[models.ClearReport])
}

func (m *CartService) Summary(ctx context.Context) models.Result[models.CartSummary] {
	args := m.Called(ctx)
	return args.Get(0).(models.Result[models.CartSummary])
}

func (m *CartService) Checkout(ctx context.Context) models.Result[models.ClearReport] {
	args := m.Called(ctx)
	return args.Get(0).(models.Result[models.ClearReport])
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) List(ctx context.Context) models.Result[[]models.Food] {
	args := m.Called(ctx)
	return args.Get(0).(models.Result[[]models.Food])
}

func (m *CatalogService) Search(ctx context.Context, query string) models.Result[[]models.Food] {
	args := m.Called(ctx, query)
	return args.Get(0).(models.Result[[]models.Food])
}

func (m *CatalogService) Get(ctx context.Context, id int) models.Result[models.Food] {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Result[models.Food])
}

type FavoritesService struct {
	mock.Mock
}

func (m *FavoritesService) List(ctx context.Context) models.Result[[]models.FavoriteEntry] {
	args := m.Called(ctx)
	return args.Get(0).(models.Result[[]models.FavoriteEntry])
}

func (m *FavoritesService) Add(ctx context.Context, food models.Food) models.Result[models.FavoriteEntry] {
	args := m.Called(ctx, food)
	return args.Get(0).(models.Result[models.FavoriteEntry])
}

func (m *FavoritesService) Remove(ctx context.Context, foodID int) models.Result[string] {
	args := m.Called(ctx, foodID)
	return args.Get(0).(models.Result[string])
}

func (m *FavoritesService) IsFavorite(ctx context.Context, foodID int) models.Result[bool] {
	args := m.Called(ctx, foodID)
	return args.Get(0).(models.Result[bool])
}

func (m *FavoritesService) Toggle(ctx context.Context, food models.Food) models.Result[bool] {
	args := m.Called(ctx, food)
	return args.Get(0).(models.Result[bool])
}

func (m *FavoritesService) AddToCart(ctx context.Context, foodID int) models.Result[string] {
	args := m.Called(ctx, foodID)
	return args.Get(0).(models.Result[string])
}
