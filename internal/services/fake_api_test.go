package service_test

import (
	"context"
	"fmt"
	"sync"

	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
)

// fakeFoodAPI is an in-memory food API: blind insert with server-assigned ids, delete by id.
type fakeFoodAPI struct {
	mu     sync.Mutex
	nextID int
	cart   []models.CartEntry
	calls  []string

	// failRemove makes RemoveFromCart reject the listed ids.
	failRemove map[int]bool
}

func newFakeFoodAPI(entries ...models.CartEntry) *fakeFoodAPI {
	f := &fakeFoodAPI{nextID: 100, failRemove: map[int]bool{}}
	f.cart = append(f.cart, entries...)
	return f
}

func (f *fakeFoodAPI) ListFoods(ctx context.Context) ([]models.Food, error) {
	return nil, appErrors.ServerError("No foods found")
}

func (f *fakeFoodAPI) AddToCart(ctx context.Context, item models.CartItemInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("add:%s:%d", item.Name, item.Quantity))
	f.nextID++
	f.cart = append(f.cart, models.CartEntry{
		ID:       f.nextID,
		Name:     item.Name,
		Image:    item.Image,
		Price:    item.Price,
		Quantity: item.Quantity,
		Username: "tamer_akdeniz",
	})

	return "added", nil
}

func (f *fakeFoodAPI) ListCart(ctx context.Context) ([]models.CartEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, "list")
	return append([]models.CartEntry{}, f.cart...), nil
}

func (f *fakeFoodAPI) RemoveFromCart(ctx context.Context, entryID int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("remove:%d", entryID))
	if f.failRemove[entryID] {
		return "", appErrors.ServerError("remove rejected")
	}

	for i, entry := range f.cart {
		if entry.ID == entryID {
			f.cart = append(f.cart[:i], f.cart[i+1:]...)
			break
		}
	}

	return "removed", nil
}

func (f *fakeFoodAPI) ImageURL(filename string) string {
	return "http://fake/" + filename
}

func (f *fakeFoodAPI) entries() []models.CartEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CartEntry{}, f.cart...)
}

func (f *fakeFoodAPI) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}
