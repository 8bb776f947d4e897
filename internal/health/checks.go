package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/config"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// FoodLister is the slice of the food API client the reachability check needs.
type FoodLister interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
}

func NewHealthHandler(cfg *config.Config, foodAPI FoodLister) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			// The catalog and cart live remotely; an outage degrades the service without taking it down.
			Name:      "food-api",
			Timeout:   cfg.FoodAPI.ConnectTimeout,
			SkipOnErr: true,
			Check:     foodAPICheck(foodAPI),
		},
	}

	if cfg.RedisConnect.Enabled {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "food-cart",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func foodAPICheck(foodAPI FoodLister) health.CheckFunc {
	return func(ctx context.Context) error {
		if foodAPI == nil {
			return fmt.Errorf("food api client is not initialized")
		}
		if _, err := foodAPI.ListFoods(ctx); err != nil {
			return fmt.Errorf("food api unreachable: %w", err)
		}
		return nil
	}
}
