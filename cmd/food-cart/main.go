package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/api/handlers"
	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-cart/internal/cache"
	"github.com/aaravmahajanofficial/food-cart/internal/config"
	"github.com/aaravmahajanofficial/food-cart/internal/health"
	"github.com/aaravmahajanofficial/food-cart/internal/metrics"
	repository "github.com/aaravmahajanofficial/food-cart/internal/repositories"
	service "github.com/aaravmahajanofficial/food-cart/internal/services"
	"github.com/aaravmahajanofficial/food-cart/internal/telemetry"
	"github.com/aaravmahajanofficial/food-cart/pkg/foodapi"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup (favorites + cart mirror)
	repo, favoriteRepo, cartMirrorRepo, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repo.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Optional catalog cache
	var catalogCache cache.Cache
	if cfg.RedisConnect.Enabled {
		redisClient, err := cache.NewRedisClient(context.Background(), &cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		catalogCache = cache.NewRedisCache(redisClient, &cfg.Cache)

		defer func() {
			if err := catalogCache.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()
	}

	foodClient := foodapi.NewClient(foodapi.Config{
		BaseURL:        cfg.FoodAPI.BaseURL,
		Username:       cfg.FoodAPI.Username,
		ConnectTimeout: cfg.FoodAPI.ConnectTimeout,
		ReadTimeout:    cfg.FoodAPI.ReadTimeout,
		WriteTimeout:   cfg.FoodAPI.WriteTimeout,
	})

	catalogService := service.NewCatalogService(foodClient, catalogCache, service.CatalogOptions{
		Source:   cfg.Catalog.Source,
		CacheTTL: cfg.Cache.DefaultTTL,
	})
	cartService := service.NewCartService(foodClient, service.NewDeleteReinsert(foodClient), cartMirrorRepo, service.CartOptions{
		Username:            cfg.FoodAPI.Username,
		DisableMutationLock: cfg.Cart.DisableMutationLock,
	})
	favoritesService := service.NewFavoritesService(favoriteRepo, cartService)

	healthChecker, err := health.NewHealthHandler(cfg, foodClient)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("services initialized",
		slog.String("env", cfg.Env),
		slog.String("catalog_source", cfg.Catalog.Source),
		slog.Bool("cache_enabled", catalogCache != nil),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	handlers.RegisterRoutes(routerMux, handlers.Handlers{
		Food:     handlers.NewFoodHandler(catalogService),
		Cart:     handlers.NewCartHandler(cartService),
		Favorite: handlers.NewFavoriteHandler(favoritesService, catalogService, cartService),
	})
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthChecker.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "food-cart")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
