package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-cart/internal/cache"
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/metrics"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/aaravmahajanofficial/food-cart/pkg/foodapi"
)

const (
	CatalogSourceRemote  = "remote"
	CatalogSourceFixture = "fixture"
)

type CatalogService interface {
	List(ctx context.Context) models.Result[[]models.Food]
	Search(ctx context.Context, query string) models.Result[[]models.Food]
	Get(ctx context.Context, id int) models.Result[models.Food]
}

type CatalogOptions struct {
	Source   string
	CacheTTL time.Duration
}

type catalogService struct {
	client foodapi.Client
	cache  cache.Cache
	opts   CatalogOptions
}

// NewCatalogService builds the catalog. cache may be nil.
func NewCatalogService(client foodapi.Client, c cache.Cache, opts CatalogOptions) CatalogService {
	if opts.Source == "" {
		opts.Source = CatalogSourceRemote
	}

	return &catalogService{client: client, cache: c, opts: opts}
}

// FixtureCatalog is the built-in offline catalog.
func FixtureCatalog() []models.Food {
	return []models.Food{
		{ID: 1, Name: "Ayran", Image: "ayran.png", Price: 2},
		{ID: 2, Name: "Baklava", Image: "baklava.png", Price: 15},
		{ID: 3, Name: "Fanta", Image: "fanta.png", Price: 3},
		{ID: 4, Name: "İzgara Somon", Image: "izgarasomon.png", Price: 35},
		{ID: 5, Name: "İzgara Tavuk", Image: "izgaratavuk.png", Price: 25},
		{ID: 6, Name: "Kadayıf", Image: "kadayif.png", Price: 12},
		{ID: 7, Name: "Kahve", Image: "kahve.png", Price: 5},
		{ID: 8, Name: "Köfte", Image: "kofte.png", Price: 20},
		{ID: 9, Name: "Lazanya", Image: "lazanya.png", Price: 18},
		{ID: 10, Name: "Makarna", Image: "makarna.png", Price: 16},
		{ID: 11, Name: "Pizza", Image: "pizza.png", Price: 22},
		{ID: 12, Name: "Su", Image: "su.png", Price: 1},
		{ID: 13, Name: "Sütlaç", Image: "sutlac.png", Price: 8},
		{ID: 14, Name: "Tiramisu", Image: "tiramisu.png", Price: 14},
	}
}

func (s *catalogService) List(ctx context.Context) models.Result[[]models.Food] {
	return models.FromError(s.list(ctx))
}

func (s *catalogService) list(ctx context.Context) ([]models.Food, error) {
	if s.opts.Source == CatalogSourceFixture {
		return FixtureCatalog(), nil
	}

	logger := middleware.LoggerFromContext(ctx)

	if s.cache != nil {
		var cached []models.Food
		found, err := s.cache.Get(ctx, cache.CatalogAllKey, &cached)
		switch {
		case err != nil:
			metrics.ObserveCatalogCache(metrics.CacheError)
			logger.Warn("Catalog cache read failed, calling food API", slog.String("error", err.Error()))
		case found:
			metrics.ObserveCatalogCache(metrics.CacheHit)
			logger.Debug("Catalog served from cache", slog.Int("count", len(cached)))
			return cached, nil
		default:
			metrics.ObserveCatalogCache(metrics.CacheMiss)
		}
	}

	foods, err := s.client.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.CatalogAllKey, foods, s.opts.CacheTTL); err != nil {
			logger.Warn("Failed to cache catalog", slog.String("error", err.Error()))
		}
	}

	return foods, nil
}

// Search matches query as a case-insensitive substring of the food name. A blank query lists everything.
func (s *catalogService) Search(ctx context.Context, query string) models.Result[[]models.Food] {
	foods, err := s.list(ctx)
	if err != nil {
		return models.Failure[[]models.Food](err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return models.Success(foods)
	}

	matches := []models.Food{}
	for _, food := range foods {
		if strings.Contains(strings.ToLower(food.Name), query) {
			matches = append(matches, food)
		}
	}

	return models.Success(matches)
}

func (s *catalogService) Get(ctx context.Context, id int) models.Result[models.Food] {
	foods, err := s.list(ctx)
	if err != nil {
		return models.Failure[models.Food](err)
	}

	for _, food := range foods {
		if food.ID == id {
			return models.Success(food)
		}
	}

	return models.Failure[models.Food](appErrors.NotFoundError("Food not found"))
}
