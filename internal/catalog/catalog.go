// internal/catalog/catalog.go

// Package catalog provides the read-only product/policy/discount/shipping
// data source consumed by the assistant. Backends are interchangeable
// behind the Catalog interface: a fixed in-memory store, a Postgres
// repository, and a Redis read-through cache that can wrap either.
package catalog

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/config"
	"shopping-assistant/internal/models"
)

var (
	ErrCatalogQueryFailed = errors.New("CATALOG_QUERY_FAILED")
)

// Catalog is the collaborator contract consumed by the query handlers.
// All operations are read-only; nil pointer results mean "not found"
// rather than failure.
type Catalog interface {
	SearchProducts(ctx context.Context, query string, maxPrice *float64, color, size *string) ([]models.Product, error)
	ComparePrices(ctx context.Context, productName string) (map[string]float64, error)
	ReturnPolicy(ctx context.Context, store string) (*models.ReturnPolicy, error)
	ApplyDiscount(ctx context.Context, price float64, code string) (*float64, error)
	ShippingEstimate(ctx context.Context, product models.Product, targetDate *time.Time) (models.ShippingDetails, error)
}

// shippingEstimator simulates shipping for a product. The estimated day
// count is drawn from the injected rand source so tests can pin it.
type shippingEstimator struct {
	cfg config.ShippingConfig
	clk clock.Clock
	rng *rand.Rand
}

func (e *shippingEstimator) estimate(targetDate *time.Time) models.ShippingDetails {
	days := e.cfg.MinDays + e.rng.Intn(e.cfg.MaxDays-e.cfg.MinDays+1)
	deliveryDate := e.clk.Now().AddDate(0, 0, days)

	available := true
	if targetDate != nil {
		available = !deliveryDate.After(*targetDate)
	}

	return models.ShippingDetails{
		Available:     available,
		Cost:          e.cfg.BaseFee,
		EstimatedDays: days,
		DeliveryDate:  deliveryDate,
	}
}
