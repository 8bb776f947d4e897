package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	service "github.com/aaravmahajanofficial/food-cart/internal/services"
	"github.com/aaravmahajanofficial/food-cart/internal/services/mocks"
	"github.com/aaravmahajanofficial/food-cart/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pizza    = models.Food{ID: 11, Name: "Pizza", Image: "pizza.png", Price: 22}
	testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	entry    = models.CartEntry{ID: 7, Name: "Pizza", Image: "pizza.png", Price: 22, Quantity: 1, Username: "tamer_akdeniz"}
)

type testServer struct {
	mux       *http.ServeMux
	cart      *mocks.CartService
	catalog   *mocks.CatalogService
	favorites *mocks.FavoritesService
}

func newTestServer() *testServer {
	s := &testServer{
		mux:       http.NewServeMux(),
		cart:      new(mocks.CartService),
		catalog:   new(mocks.CatalogService),
		favorites: new(mocks.FavoritesService),
	}

	handlers.RegisterRoutes(s.mux, handlers.Handlers{
		Food:     handlers.NewFoodHandler(s.catalog),
		Cart:     handlers.NewCartHandler(s.cart),
		Favorite: handlers.NewFavoriteHandler(s.favorites, s.catalog, s.cart),
	})

	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) assertExpectations(t *testing.T) {
	s.cart.AssertExpectations(t)
	s.catalog.AssertExpectations(t)
	s.favorites.AssertExpectations(t)
}

func TestFoodRoutes(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		s := newTestServer()
		s.catalog.On("List", mock.Anything).Return(models.Success([]models.Food{pizza})).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/foods", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[[]models.Food](t, rr)
		assert.True(t, body.Success)
		assert.Equal(t, []models.Food{pizza}, body.Data)
		s.assertExpectations(t)
	})

	t.Run("Search", func(t *testing.T) {
		s := newTestServer()
		s.catalog.On("Search", mock.Anything, "piz").Return(models.Success([]models.Food{pizza})).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/foods?q=piz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		s.assertExpectations(t)
	})

	t.Run("Remote failure", func(t *testing.T) {
		s := newTestServer()
		s.catalog.On("List", mock.Anything).
			Return(models.Failure[[]models.Food](appErrors.NetworkError("Network Error: timeout"))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/foods", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		body := testutils.DecodeEnvelope[any](t, rr)
		require.NotNil(t, body.Error)
		assert.Equal(t, appErrors.ErrCodeNetworkError, body.Error.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/foods/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestCartRoutes(t *testing.T) {
	summary := models.NewCartSummary([]models.CartEntry{entry})

	t.Run("Get cart", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("Summary", mock.Anything).Return(models.Success(summary)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/cart", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.CartSummary](t, rr)
		assert.Equal(t, 22, body.Data.TotalPrice)
		assert.Equal(t, 1, body.Data.TotalQuantity)
	})

	t.Run("Add distinct answers with a fresh summary", func(t *testing.T) {
		// Arrange
		s := newTestServer()
		s.cart.On("AddDistinct", mock.Anything, pizza, 0).Return(models.Success(service.MsgAddedToCart)).Once()
		s.cart.On("Summary", mock.Anything).Return(models.Success(summary)).Once()
		req := testutils.NewRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddCartItemRequest{
			FoodID: 11, Name: "Pizza", Image: "pizza.png", Price: 22,
		})

		// Act
		rr := s.do(req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		body := testutils.DecodeEnvelope[models.CartMutationResponse](t, rr)
		assert.Equal(t, service.MsgAddedToCart, body.Data.Message)
		require.NotNil(t, body.Data.Cart)
		assert.Equal(t, summary.TotalPrice, body.Data.Cart.TotalPrice)
		s.assertExpectations(t)
	})

	t.Run("Add replace", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("AddOrReplace", mock.Anything, pizza, 3).Return(models.Success(service.MsgCartUpdated)).Once()
		s.cart.On("Summary", mock.Anything).Return(models.Success(summary)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddCartItemRequest{
			FoodID: 11, Name: "Pizza", Image: "pizza.png", Price: 22, Quantity: 3, Mode: "replace",
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)
		s.assertExpectations(t)
	})

	t.Run("Already in cart", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("AddDistinct", mock.Anything, pizza, 1).
			Return(models.Failure[string](appErrors.AlreadyInCartError())).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddCartItemRequest{
			FoodID: 11, Name: "Pizza", Image: "pizza.png", Price: 22, Quantity: 1,
		}))

		assert.Equal(t, http.StatusConflict, rr.Code)
		body := testutils.DecodeEnvelope[any](t, rr)
		assert.Equal(t, "already in cart", body.Error.Message)
		s.cart.AssertNotCalled(t, "Summary", mock.Anything)
	})

	t.Run("Invalid mode", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddCartItemRequest{
			Name: "Pizza", Image: "pizza.png", Price: 22, Mode: "merge",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := testutils.DecodeEnvelope[any](t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, body.Error.Code)
	})

	t.Run("Empty body", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/cart/items", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Update quantity by id", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("SetQuantityByID", mock.Anything, 7, 3).Return(models.Success(service.MsgQuantityUpdated)).Once()
		s.cart.On("Summary", mock.Anything).Return(models.Success(summary)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPut, "/api/v1/cart/items/7", models.UpdateQuantityRequest{Quantity: 3}))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.CartMutationResponse](t, rr)
		assert.Equal(t, service.MsgQuantityUpdated, body.Data.Message)
		s.assertExpectations(t)
	})

	t.Run("Update quantity of an unknown entry", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("SetQuantityByID", mock.Anything, 99, 3).
			Return(models.Failure[string](appErrors.NotFoundError(service.MsgCartEntryNotFound))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPut, "/api/v1/cart/items/99", models.UpdateQuantityRequest{Quantity: 3}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		s.cart.AssertNotCalled(t, "Summary", mock.Anything)
	})

	t.Run("Local mirror", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("MirrorSnapshot", mock.Anything).Return(models.Success(summary)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/cart/mirror", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.CartSummary](t, rr)
		assert.Equal(t, summary, body.Data)
		s.cart.AssertNotCalled(t, "Summary", mock.Anything)
	})

	t.Run("Remove, summary failure still succeeds", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("Remove", mock.Anything, 7).Return(models.Success(service.MsgRemovedFromCart)).Once()
		s.cart.On("Summary", mock.Anything).
			Return(models.Failure[models.CartSummary](appErrors.NetworkError("Network Error: reset"))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodDelete, "/api/v1/cart/items/7", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.CartMutationResponse](t, rr)
		assert.Equal(t, service.MsgRemovedFromCart, body.Data.Message)
		assert.Nil(t, body.Data.Cart)
	})

	t.Run("Clear reports per entry", func(t *testing.T) {
		s := newTestServer()
		report := models.ClearReport{}
		report.Record(entry, nil)
		cleared := models.Success(report)
		cleared.Message = service.MsgCartCleared
		s.cart.On("ClearCart", mock.Anything).Return(cleared).Once()
		s.cart.On("Summary", mock.Anything).Return(models.Success(models.NewCartSummary(nil))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodDelete, "/api/v1/cart", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.CartMutationResponse](t, rr)
		assert.Equal(t, service.MsgCartCleared, body.Data.Message)
		require.NotNil(t, body.Data.Report)
		assert.Equal(t, 1, body.Data.Report.Removed)
		require.NotNil(t, body.Data.Cart)
		assert.Empty(t, body.Data.Cart.Entries)
	})

	t.Run("Checkout", func(t *testing.T) {
		s := newTestServer()
		s.cart.On("Checkout", mock.Anything).Return(models.Success(models.ClearReport{})).Once()
		s.cart.On("Summary", mock.Anything).Return(models.Success(models.NewCartSummary(nil))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/cart/checkout", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		s.assertExpectations(t)
	})
}

func TestFavoriteRoutes(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("Add", mock.Anything, pizza).Return(models.Success(pizza.ToFavorite(testTime))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/favorites", models.AddFavoriteRequest{
			ID: 11, Name: "Pizza", Image: "pizza.png", Price: 22,
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)
		body := testutils.DecodeEnvelope[models.FavoriteEntry](t, rr)
		assert.Equal(t, 11, body.Data.FoodID)
	})

	t.Run("Add - missing id", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/favorites", models.AddFavoriteRequest{
			Name: "Pizza", Image: "pizza.png",
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("Toggle on resolves the food from the catalog", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("IsFavorite", mock.Anything, 11).Return(models.Success(false)).Once()
		s.catalog.On("Get", mock.Anything, 11).Return(models.Success(pizza)).Once()
		s.favorites.On("Toggle", mock.Anything, pizza).Return(models.Success(true)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/favorites/11/toggle", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.FavoriteStatus](t, rr)
		assert.Equal(t, models.FavoriteStatus{ID: 11, IsFavorite: true}, body.Data)
		s.assertExpectations(t)
	})

	t.Run("Toggle off works without the catalog", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("IsFavorite", mock.Anything, 11).Return(models.Success(true)).Once()
		s.favorites.On("Remove", mock.Anything, 11).Return(models.Success(service.MsgFavoriteRemoved)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/favorites/11/toggle", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := testutils.DecodeEnvelope[models.FavoriteStatus](t, rr)
		assert.Equal(t, models.FavoriteStatus{ID: 11, IsFavorite: false}, body.Data)
		s.catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		s.favorites.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
		s.assertExpectations(t)
	})

	t.Run("Toggle on with the catalog down", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("IsFavorite", mock.Anything, 11).Return(models.Success(false)).Once()
		s.catalog.On("Get", mock.Anything, 11).
			Return(models.Failure[models.Food](appErrors.NetworkError("Network Error: timeout"))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/favorites/11/toggle", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		s.favorites.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
	})

	t.Run("Status", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("IsFavorite", mock.Anything, 11).Return(models.Success(false)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/favorites/11", nil))

		body := testutils.DecodeEnvelope[models.FavoriteStatus](t, rr)
		assert.False(t, body.Data.IsFavorite)
	})

	t.Run("Remove", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("Remove", mock.Anything, 11).Return(models.Success(service.MsgFavoriteRemoved)).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodDelete, "/api/v1/favorites/11", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		s.assertExpectations(t)
	})

	t.Run("Favorite to cart", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("AddToCart", mock.Anything, 11).Return(models.Success(service.MsgAddedToCart)).Once()
		s.cart.On("Summary", mock.Anything).Return(models.Success(models.NewCartSummary([]models.CartEntry{entry}))).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodPost, "/api/v1/favorites/11/cart", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		s.assertExpectations(t)
	})

	t.Run("List", func(t *testing.T) {
		s := newTestServer()
		s.favorites.On("List", mock.Anything).Return(models.Success([]models.FavoriteEntry{})).Once()

		rr := s.do(testutils.NewRequest(t, http.MethodGet, "/api/v1/favorites", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
	})
}
