package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/food-cart/internal/models"
	service "github.com/aaravmahajanofficial/food-cart/internal/services"
	"github.com/aaravmahajanofficial/food-cart/internal/utils"
	"github.com/aaravmahajanofficial/food-cart/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type FavoriteHandler struct {
	favorites service.FavoritesService
	catalog   service.CatalogService
	cart      service.CartService
	validator *validator.Validate
}

func NewFavoriteHandler(favorites service.FavoritesService, catalog service.CatalogService, cart service.CartService) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		catalog:   catalog,
		cart:      cart,
		validator: validator.New(),
	}
}

func (h *FavoriteHandler) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Result(w, http.StatusOK, h.favorites.List(r.Context()))
	}
}

func (h *FavoriteHandler) AddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddFavoriteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Result(w, http.StatusCreated, h.favorites.Add(r.Context(), req.Food()))
	}
}

// ToggleFavorite flips the state of a food and answers with the new state. Un-favoriting works from
// the local store alone; only adding needs the food from the catalog.
func (h *FavoriteHandler) ToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		current := h.favorites.IsFavorite(r.Context(), id)
		if current.IsError() {
			response.Error(w, current.Err)
			return
		}

		if current.Data {
			removed := h.favorites.Remove(r.Context(), id)
			if removed.IsError() {
				response.Error(w, removed.Err)
				return
			}

			response.Success(w, http.StatusOK, models.FavoriteStatus{ID: id, IsFavorite: false})
			return
		}

		food := h.catalog.Get(r.Context(), id)
		if food.IsError() {
			response.Error(w, food.Err)
			return
		}

		toggled := h.favorites.Toggle(r.Context(), food.Data)
		if toggled.IsError() {
			response.Error(w, toggled.Err)
			return
		}

		response.Success(w, http.StatusOK, models.FavoriteStatus{ID: id, IsFavorite: toggled.Data})
	}
}

func (h *FavoriteHandler) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		response.Result(w, http.StatusOK, h.favorites.Remove(r.Context(), id))
	}
}

func (h *FavoriteHandler) GetFavoriteStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		status := h.favorites.IsFavorite(r.Context(), id)
		if status.IsError() {
			response.Error(w, status.Err)
			return
		}

		response.Success(w, http.StatusOK, models.FavoriteStatus{ID: id, IsFavorite: status.Data})
	}
}

// AddFavoriteToCart promotes a favorite into the cart; a duplicate name is ALREADY_IN_CART.
func (h *FavoriteHandler) AddFavoriteToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		writeMutation(w, r, h.cart, http.StatusCreated, h.favorites.AddToCart(r.Context(), id))
	}
}
