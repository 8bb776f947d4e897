package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/aaravmahajanofficial/food-cart/pkg/foodapi"
)

// Reconciler turns "make the cart hold item" into remote calls. existing is the entry currently
// holding item.Name, or nil when there is none.
type Reconciler interface {
	Reconcile(ctx context.Context, existing *models.CartEntry, item models.CartItemInput) (string, error)
}

// DeleteReinsert emulates an update on an insert/delete-only API: remove existing, then insert item.
// The insert is never attempted when the remove fails.
type DeleteReinsert struct {
	client foodapi.Client
}

func NewDeleteReinsert(client foodapi.Client) *DeleteReinsert {
	return &DeleteReinsert{client: client}
}

func (d *DeleteReinsert) Reconcile(ctx context.Context, existing *models.CartEntry, item models.CartItemInput) (string, error) {
	logger := middleware.LoggerFromContext(ctx)

	if existing != nil {
		if _, err := d.client.RemoveFromCart(ctx, existing.ID); err != nil {
			logger.Warn("Reconcile aborted, remove failed",
				slog.Int("entry_id", existing.ID),
				slog.String("name", existing.Name),
				slog.String("error", err.Error()))
			return "", err
		}
	}

	return d.client.AddToCart(ctx, item)
}
