package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	repository "github.com/aaravmahajanofficial/food-cart/internal/repositories"
	"github.com/aaravmahajanofficial/food-cart/pkg/foodapi"
)

const (
	MsgAddedToCart      = "Successfully added to cart"
	MsgCartUpdated      = "Successfully updated cart"
	MsgQuantityUpdated  = "Successfully updated quantity"
	MsgRemovedFromCart  = "Successfully removed from cart"
	MsgCartCleared      = "Cart cleared successfully"
	MsgCartClearPartial = "Cart cleared with failures"

	MsgCartEntryNotFound = "Cart entry not found"
)

// CartService is the cart reconciliation layer over the insert/delete-only food API.
// Every operation answers with a Result; errors from the food API pass through unchanged.
type CartService interface {
	AddDistinct(ctx context.Context, food models.Food, quantity int) models.Result[string]
	AddOrReplace(ctx context.Context, food models.Food, quantity int) models.Result[string]
	SetQuantity(ctx context.Context, entry models.CartEntry, newQuantity int) models.Result[string]
	SetQuantityByID(ctx context.Context, entryID int, newQuantity int) models.Result[string]
	Remove(ctx context.Context, entryID int) models.Result[string]
	ClearCart(ctx context.Context) models.Result[models.ClearReport]
	Summary(ctx context.Context) models.Result[models.CartSummary]
	Checkout(ctx context.Context) models.Result[models.ClearReport]
	MirrorSnapshot(ctx context.Context) models.Result[models.CartSummary]
}

type CartOptions struct {
	// Username keys the mutation lock. It is the same identity the food API client sends.
	Username string
	// DisableMutationLock lets overlapping mutations for one user race at the server.
	DisableMutationLock bool
}

type cartService struct {
	client     foodapi.Client
	reconciler Reconciler
	mirror     repository.CartMirrorRepository
	locks      *keyedLock
	opts       CartOptions
}

// NewCartService wires the reconciliation layer. mirror may be nil.
func NewCartService(client foodapi.Client, reconciler Reconciler, mirror repository.CartMirrorRepository, opts CartOptions) CartService {
	if reconciler == nil {
		reconciler = NewDeleteReinsert(client)
	}

	return &cartService{
		client:     client,
		reconciler: reconciler,
		mirror:     mirror,
		locks:      newKeyedLock(),
		opts:       opts,
	}
}

func (s *cartService) lock() func() {
	if s.opts.DisableMutationLock {
		return func() {}
	}

	return s.locks.Lock(s.opts.Username)
}

// AddDistinct inserts food with quantity 1 unless an entry with the same name exists.
// quantity is accepted for symmetry with AddOrReplace and ignored.
func (s *cartService) AddDistinct(ctx context.Context, food models.Food, quantity int) models.Result[string] {
	logger := middleware.LoggerFromContext(ctx)
	defer s.lock()()

	entries, err := s.client.ListCart(ctx)
	if err != nil {
		return models.Failure[string](err)
	}

	if _, found := models.NewCartSummary(entries).FindByName(food.Name); found {
		logger.Warn("Food already in cart", slog.String("name", food.Name))
		return models.Failure[string](appErrors.AlreadyInCartError())
	}

	if _, err := s.client.AddToCart(ctx, food.CartItem(1)); err != nil {
		return models.Failure[string](err)
	}

	logger.Info("Food added to cart", slog.String("name", food.Name), slog.Int("quantity", 1))
	return models.Success(MsgAddedToCart)
}

// AddOrReplace makes the cart hold exactly one entry named food.Name with the given quantity.
func (s *cartService) AddOrReplace(ctx context.Context, food models.Food, quantity int) models.Result[string] {
	logger := middleware.LoggerFromContext(ctx)

	if quantity < 1 {
		return models.Failure[string](appErrors.AddValidationError("quantity", "must be at least 1"))
	}

	defer s.lock()()

	entries, err := s.client.ListCart(ctx)
	if err != nil {
		return models.Failure[string](err)
	}

	var existing *models.CartEntry
	if entry, found := models.NewCartSummary(entries).FindByName(food.Name); found {
		existing = &entry
	}

	if _, err := s.reconciler.Reconcile(ctx, existing, food.CartItem(quantity)); err != nil {
		return models.Failure[string](err)
	}

	logger.Info("Cart entry reconciled",
		slog.String("name", food.Name),
		slog.Int("quantity", quantity),
		slog.Bool("replaced", existing != nil))

	if existing != nil {
		return models.Success(MsgCartUpdated)
	}

	return models.Success(MsgAddedToCart)
}

// SetQuantity treats zero and negative quantities as removal.
func (s *cartService) SetQuantity(ctx context.Context, entry models.CartEntry, newQuantity int) models.Result[string] {
	defer s.lock()()
	return s.setQuantity(ctx, entry, newQuantity)
}

// SetQuantityByID resolves entryID from a listing taken under the mutation lock, so a
// second caller holding the same id sees that the entry was already replaced.
func (s *cartService) SetQuantityByID(ctx context.Context, entryID int, newQuantity int) models.Result[string] {
	defer s.lock()()

	entries, err := s.client.ListCart(ctx)
	if err != nil {
		return models.Failure[string](err)
	}

	entry, found := models.NewCartSummary(entries).FindByID(entryID)
	if !found {
		middleware.LoggerFromContext(ctx).Warn("Cart entry not found", slog.Int("entry_id", entryID))
		return models.Failure[string](appErrors.NotFoundError(MsgCartEntryNotFound))
	}

	return s.setQuantity(ctx, entry, newQuantity)
}

func (s *cartService) setQuantity(ctx context.Context, entry models.CartEntry, newQuantity int) models.Result[string] {
	logger := middleware.LoggerFromContext(ctx)

	if newQuantity <= 0 {
		if _, err := s.client.RemoveFromCart(ctx, entry.ID); err != nil {
			return models.Failure[string](err)
		}
		s.dropFromMirror(ctx, entry.ID)

		logger.Info("Cart entry removed by quantity", slog.Int("entry_id", entry.ID), slog.Int("quantity", newQuantity))
		return models.Success(MsgRemovedFromCart)
	}

	if _, err := s.reconciler.Reconcile(ctx, &entry, entry.CartItem(newQuantity)); err != nil {
		return models.Failure[string](err)
	}

	logger.Info("Cart entry quantity updated", slog.Int("entry_id", entry.ID), slog.Int("quantity", newQuantity))
	return models.Success(MsgQuantityUpdated)
}

func (s *cartService) Remove(ctx context.Context, entryID int) models.Result[string] {
	defer s.lock()()

	if _, err := s.client.RemoveFromCart(ctx, entryID); err != nil {
		return models.Failure[string](err)
	}
	s.dropFromMirror(ctx, entryID)

	middleware.LoggerFromContext(ctx).Info("Cart entry removed", slog.Int("entry_id", entryID))
	return models.Success(MsgRemovedFromCart)
}

// ClearCart removes every listed entry one by one. Once the listing succeeds the result is
// Success; individual failures are reported in the ClearReport. There is no verification re-list.
func (s *cartService) ClearCart(ctx context.Context) models.Result[models.ClearReport] {
	logger := middleware.LoggerFromContext(ctx)
	defer s.lock()()

	entries, err := s.client.ListCart(ctx)
	if err != nil {
		return models.Failure[models.ClearReport](err)
	}

	report := models.ClearReport{Outcomes: []models.RemoveOutcome{}}
	for _, entry := range entries {
		_, err := s.client.RemoveFromCart(ctx, entry.ID)
		if err != nil {
			logger.Warn("Failed to remove cart entry during clear",
				slog.Int("entry_id", entry.ID),
				slog.String("error", err.Error()))
		}
		report.Record(entry, err)
	}

	logger.Info("Cart cleared", slog.Int("removed", report.Removed), slog.Int("failed", report.Failed))

	result := models.Success(report)
	result.Message = MsgCartCleared
	if report.Failed > 0 {
		result.Message = MsgCartClearPartial
	} else {
		s.clearMirror(ctx)
	}

	return result
}

// Summary lists the cart and computes totals from that listing. The local mirror is refreshed
// on the way, best effort.
func (s *cartService) Summary(ctx context.Context) models.Result[models.CartSummary] {
	entries, err := s.client.ListCart(ctx)
	if err != nil {
		return models.Failure[models.CartSummary](err)
	}

	summary := models.NewCartSummary(entries)
	s.refreshMirror(ctx, summary.Entries)

	return models.Success(summary)
}

// Checkout has no payment step: it clears the cart.
func (s *cartService) Checkout(ctx context.Context) models.Result[models.ClearReport] {
	middleware.LoggerFromContext(ctx).Info("Checkout requested")
	return s.ClearCart(ctx)
}

func (s *cartService) refreshMirror(ctx context.Context, entries []models.CartEntry) {
	if s.mirror == nil {
		return
	}

	if err := s.mirror.ReplaceAll(ctx, entries); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to refresh local cart mirror", slog.String("error", err.Error()))
	}
}

// MirrorSnapshot answers with the last cart listing stored locally. It may be stale and is
// only meant for display while the food API is unreachable.
func (s *cartService) MirrorSnapshot(ctx context.Context) models.Result[models.CartSummary] {
	if s.mirror == nil {
		return models.Failure[models.CartSummary](appErrors.NotFoundError("Local cart mirror is not configured"))
	}

	entries, err := s.mirror.List(ctx)
	if err != nil {
		return models.Failure[models.CartSummary](appErrors.DatabaseError("Failed to read local cart").WithError(err))
	}

	totalPrice, err := s.mirror.TotalPrice(ctx)
	if err != nil {
		return models.Failure[models.CartSummary](appErrors.DatabaseError("Failed to read local cart").WithError(err))
	}

	totalQuantity, err := s.mirror.TotalQuantity(ctx)
	if err != nil {
		return models.Failure[models.CartSummary](appErrors.DatabaseError("Failed to read local cart").WithError(err))
	}

	return models.Success(models.CartSummary{
		Entries:       entries,
		TotalPrice:    totalPrice,
		TotalQuantity: totalQuantity,
	})
}

// dropFromMirror and clearMirror keep the mirror close to the server between listings, best effort.
func (s *cartService) dropFromMirror(ctx context.Context, entryID int) {
	if s.mirror == nil {
		return
	}

	if err := s.mirror.Delete(ctx, entryID); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to drop entry from local cart mirror",
			slog.Int("entry_id", entryID),
			slog.String("error", err.Error()))
	}
}

func (s *cartService) clearMirror(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	if err := s.mirror.Clear(ctx); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to clear local cart mirror", slog.String("error", err.Error()))
	}
}
