package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/food-cart/internal/services"
	"github.com/aaravmahajanofficial/food-cart/internal/utils/response"
)

type FoodHandler struct {
	catalog service.CatalogService
}

func NewFoodHandler(catalog service.CatalogService) *FoodHandler {
	return &FoodHandler{catalog: catalog}
}

// ListFoods lists the catalog, filtered by ?q= when present.
func (h *FoodHandler) ListFoods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if query := r.URL.Query().Get("q"); query != "" {
			response.Result(w, http.StatusOK, h.catalog.Search(r.Context(), query))
			return
		}

		response.Result(w, http.StatusOK, h.catalog.List(r.Context()))
	}
}

func (h *FoodHandler) GetFood() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		response.Result(w, http.StatusOK, h.catalog.Get(r.Context(), id))
	}
}
