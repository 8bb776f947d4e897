package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	service "github.com/aaravmahajanofficial/food-cart/internal/services"
	"github.com/aaravmahajanofficial/food-cart/internal/utils"
	"github.com/aaravmahajanofficial/food-cart/internal/utils/response"
)

// pathID reads the {id} path value, writing a 400 when it is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid path id", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError(err.Error()))
		return 0, false
	}

	return id, true
}

// writeMutation answers a finished cart mutation with its message and a fresh listing.
func writeMutation(w http.ResponseWriter, r *http.Request, cart service.CartService, statusCode int, result models.Result[string]) {
	if result.IsError() {
		response.Error(w, result.Err)
		return
	}

	response.Success(w, statusCode, models.CartMutationResponse{
		Message: result.Data,
		Cart:    freshSummary(r, cart),
	})
}

func writeClear(w http.ResponseWriter, r *http.Request, cart service.CartService, result models.Result[models.ClearReport]) {
	if result.IsError() {
		response.Error(w, result.Err)
		return
	}

	report := result.Data
	response.Success(w, http.StatusOK, models.CartMutationResponse{
		Message: result.Message,
		Report:  &report,
		Cart:    freshSummary(r, cart),
	})
}

// freshSummary re-lists the cart; nil when the listing fails, the mutation already succeeded.
func freshSummary(r *http.Request, cart service.CartService) *models.CartSummary {
	summary := cart.Summary(r.Context())
	if summary.IsError() {
		middleware.LoggerFromContext(r.Context()).Warn("Cart listing after mutation failed", slog.String("error", summary.Message))
		return nil
	}

	return &summary.Data
}
