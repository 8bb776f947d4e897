package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/stretchr/testify/mock"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Add(ctx context.Context, entry *models.FavoriteEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *FavoriteRepository) Remove(ctx context.Context, foodID int) error {
	args := m.Called(ctx, foodID)
	return args.Error(0)
}

func (m *FavoriteRepository) Exists(ctx context.Context, foodID int) (bool, error) {
	args := m.Called(ctx, foodID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) Get(ctx context.Context, foodID int) (*models.FavoriteEntry, error) {
	args := m.Called(ctx, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.FavoriteEntry), args.Error(1)
}

func (m *FavoriteRepository) List(ctx context.Context) ([]models.FavoriteEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.FavoriteEntry), args.Error(1)
}

func (m *FavoriteRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type CartMirrorRepository struct {
	mock.Mock
}

func (m *CartMirrorRepository) Upsert(ctx context.Context, entry *models.CartEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *CartMirrorRepository) Get(ctx context.Context, entryID int) (*models.CartEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartEntry), args.Error(1)
}

func (m *CartMirrorRepository) Delete(ctx context.Context, entryID int) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *CartMirrorRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CartMirrorRepository) ReplaceAll(ctx context.Context, entries []models.CartEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *CartMirrorRepository) List(ctx context.Context) ([]models.CartEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartEntry), args.Error(1)
}

func (m *CartMirrorRepository) TotalPrice(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *CartMirrorRepository) TotalQuantity(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
