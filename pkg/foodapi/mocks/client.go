package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func NewClient() *Client {
	return &Client{}
}

func (m *Client) ListFoods(ctx context.Context) ([]models.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *Client) AddToCart(ctx context.Context, item models.CartItemInput) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *Client) ListCart(ctx context.Context) ([]models.CartEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartEntry), args.Error(1)
}

func (m *Client) RemoveFromCart(ctx context.Context, entryID int) (string, error) {
	args := m.Called(ctx, entryID)
	return args.String(0), args.Error(1)
}

func (m *Client) ImageURL(filename string) string {
	args := m.Called(filename)
	return args.String(0)
}
