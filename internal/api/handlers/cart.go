package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	service "github.com/aaravmahajanofficial/food-cart/internal/services"
	"github.com/aaravmahajanofficial/food-cart/internal/utils"
	"github.com/aaravmahajanofficial/food-cart/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const (
	addModeDistinct = "distinct"
	addModeReplace  = "replace"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// GetCart answers with the listing and totals. Clients render the empty state on error.
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Result(w, http.StatusOK, h.cartService.Summary(r.Context()))
	}
}

// AddItem adds a food. mode=distinct (default) refuses duplicates, mode=replace sets the quantity.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		var result models.Result[string]
		if req.Mode == addModeReplace {
			result = h.cartService.AddOrReplace(r.Context(), req.Food(), req.Quantity)
		} else {
			result = h.cartService.AddDistinct(r.Context(), req.Food(), req.Quantity)
		}

		writeMutation(w, r, h.cartService, http.StatusCreated, result)
	}
}

// UpdateQuantity sets the quantity of a listed entry; zero or less removes it. An id that is no
// longer listed is NOT_FOUND.
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		writeMutation(w, r, h.cartService, http.StatusOK, h.cartService.SetQuantityByID(r.Context(), id, req.Quantity))
	}
}

// GetCartMirror answers with the locally stored copy of the last cart listing.
func (h *CartHandler) GetCartMirror() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Result(w, http.StatusOK, h.cartService.MirrorSnapshot(r.Context()))
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		writeMutation(w, r, h.cartService, http.StatusOK, h.cartService.Remove(r.Context(), id))
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeClear(w, r, h.cartService, h.cartService.ClearCart(r.Context()))
	}
}

func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeClear(w, r, h.cartService, h.cartService.Checkout(r.Context()))
	}
}
