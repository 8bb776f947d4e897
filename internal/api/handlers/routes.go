package handlers

import "net/http"

type Handlers struct {
	Food     *FoodHandler
	Cart     *CartHandler
	Favorite *FavoriteHandler
}

// RegisterRoutes mounts the /api/v1 surface on mux.
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /api/v1/foods", h.Food.ListFoods())
	mux.HandleFunc("GET /api/v1/foods/{id}", h.Food.GetFood())

	mux.HandleFunc("GET /api/v1/cart", h.Cart.GetCart())
	mux.HandleFunc("DELETE /api/v1/cart", h.Cart.ClearCart())
	mux.HandleFunc("GET /api/v1/cart/mirror", h.Cart.GetCartMirror())
	mux.HandleFunc("POST /api/v1/cart/items", h.Cart.AddItem())
	mux.HandleFunc("PUT /api/v1/cart/items/{id}", h.Cart.UpdateQuantity())
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", h.Cart.RemoveItem())
	mux.HandleFunc("POST /api/v1/cart/checkout", h.Cart.Checkout())

	mux.HandleFunc("GET /api/v1/favorites", h.Favorite.ListFavorites())
	mux.HandleFunc("POST /api/v1/favorites", h.Favorite.AddFavorite())
	mux.HandleFunc("GET /api/v1/favorites/{id}", h.Favorite.GetFavoriteStatus())
	mux.HandleFunc("DELETE /api/v1/favorites/{id}", h.Favorite.RemoveFavorite())
	mux.HandleFunc("POST /api/v1/favorites/{id}/toggle", h.Favorite.ToggleFavorite())
	mux.HandleFunc("POST /api/v1/favorites/{id}/cart", h.Favorite.AddFavoriteToCart())
}
