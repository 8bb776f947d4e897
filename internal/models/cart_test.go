package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewCartSummary(t *testing.T) {
	t.Run("Totals From Listing", func(t *testing.T) {
		summary := models.NewCartSummary([]models.CartEntry{
			{ID: 7, Name: "Pizza", Price: 22, Quantity: 3},
			{ID: 9, Name: "Ayran", Price: 2, Quantity: 2},
		})

		assert.Equal(t, 70, summary.TotalPrice)
		assert.Equal(t, 5, summary.TotalQuantity)
		assert.Len(t, summary.Entries, 2)
	})

	t.Run("Empty Listing", func(t *testing.T) {
		summary := models.NewCartSummary(nil)

		assert.NotNil(t, summary.Entries)
		assert.Zero(t, summary.TotalPrice)
		assert.Zero(t, summary.TotalQuantity)
	})
}

func TestCartSummaryFind(t *testing.T) {
	summary := models.NewCartSummary([]models.CartEntry{{ID: 7, Name: "Pizza", Price: 22, Quantity: 1}})

	entry, ok := summary.FindByName("Pizza")
	assert.True(t, ok)
	assert.Equal(t, 7, entry.ID)

	_, ok = summary.FindByName("pizza")
	assert.False(t, ok, "name matching is exact")

	_, ok = summary.FindByID(8)
	assert.False(t, ok)
}

func TestClearReportRecord(t *testing.T) {
	var report models.ClearReport

	report.Record(models.CartEntry{ID: 1, Name: "Su"}, nil)
	report.Record(models.CartEntry{ID: 2, Name: "Kahve"}, errors.New("Network Error: timeout"))

	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Outcomes[0].OK())
	assert.False(t, report.Outcomes[1].OK())
	assert.Equal(t, 2, report.Outcomes[1].EntryID)
}

func TestFoodConversions(t *testing.T) {
	food := models.Food{ID: 11, Name: "Pizza", Image: "pizza.png", Price: 22}
	now := time.Now()

	fav := food.ToFavorite(now)
	assert.Equal(t, food, fav.ToFood())
	assert.Equal(t, now, fav.AddedAt)

	item := food.CartItem(3)
	assert.Equal(t, models.CartItemInput{Name: "Pizza", Image: "pizza.png", Price: 22, Quantity: 3}, item)
}
