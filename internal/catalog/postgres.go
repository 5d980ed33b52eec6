// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/config"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"

	"github.com/lib/pq"
)

const searchProductsQuery = `
SELECT id, name, price, color, size, store, stock, description
FROM products
WHERE (LOWER(name) || ' ' || LOWER(description) || ' ' || LOWER(color)) LIKE ANY($1)
  AND ($2::numeric IS NULL OR price <= $2)
  AND ($3::text IS NULL OR LOWER(color) = LOWER($3))
  AND ($4::text IS NULL OR LOWER(size) = LOWER($4))
ORDER BY id`

const comparePricesQuery = `
SELECT store, price
FROM products
WHERE name ILIKE $1
ORDER BY id`

const returnPolicyQuery = `
SELECT store, days_allowed, free_returns, conditions
FROM return_policies
WHERE store = $1`

const promoFractionQuery = `
SELECT fraction
FROM promo_codes
WHERE code = $1`

// PostgresCatalog serves the Catalog interface from a relational store.
// Shipping estimates stay simulated; only product, policy, and promo data
// live in the database.
type PostgresCatalog struct {
	db       *sql.DB
	shipping shippingEstimator
	logger   logger.Logger
}

func NewPostgresCatalog(db *sql.DB, shipCfg config.ShippingConfig, clk clock.Clock, rng *rand.Rand, log logger.Logger) *PostgresCatalog {
	return &PostgresCatalog{
		db:       db,
		shipping: shippingEstimator{cfg: shipCfg, clk: clk, rng: rng},
		logger:   log.With(map[string]interface{}{"catalog": "postgres"}),
	}
}

func (c *PostgresCatalog) SearchProducts(ctx context.Context, query string, maxPrice *float64, color, size *string) ([]models.Product, error) {
	keywords := searchKeywords(query)
	patterns := make([]string, len(keywords))
	for i, kw := range keywords {
		patterns[i] = "%" + kw + "%"
	}

	rows, err := c.db.QueryContext(ctx, searchProductsQuery, pq.Array(patterns), maxPrice, color, size)
	if err != nil {
		return nil, fmt.Errorf("%w: search products: %v", ErrCatalogQueryFailed, err)
	}
	defer rows.Close()

	results := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Color, &p.Size, &p.Store, &p.Stock, &p.Description); err != nil {
			return nil, fmt.Errorf("%w: scan product: %v", ErrCatalogQueryFailed, err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate products: %v", ErrCatalogQueryFailed, err)
	}
	return results, nil
}

func (c *PostgresCatalog) ComparePrices(ctx context.Context, productName string) (map[string]float64, error) {
	rows, err := c.db.QueryContext(ctx, comparePricesQuery, "%"+productName+"%")
	if err != nil {
		return nil, fmt.Errorf("%w: compare prices: %v", ErrCatalogQueryFailed, err)
	}
	defer rows.Close()

	results := make(map[string]float64)
	for rows.Next() {
		var store string
		var price float64
		if err := rows.Scan(&store, &price); err != nil {
			return nil, fmt.Errorf("%w: scan price: %v", ErrCatalogQueryFailed, err)
		}
		results[store] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate prices: %v", ErrCatalogQueryFailed, err)
	}
	return results, nil
}

func (c *PostgresCatalog) ReturnPolicy(ctx context.Context, store string) (*models.ReturnPolicy, error) {
	var policy models.ReturnPolicy
	err := c.db.QueryRowContext(ctx, returnPolicyQuery, store).
		Scan(&policy.Store, &policy.DaysAllowed, &policy.FreeReturns, &policy.Conditions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: return policy: %v", ErrCatalogQueryFailed, err)
	}
	return &policy, nil
}

func (c *PostgresCatalog) ApplyDiscount(ctx context.Context, price float64, code string) (*float64, error) {
	var fraction float64
	err := c.db.QueryRowContext(ctx, promoFractionQuery, code).Scan(&fraction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: promo lookup: %v", ErrCatalogQueryFailed, err)
	}
	final := price * (1 - fraction)
	return &final, nil
}

func (c *PostgresCatalog) ShippingEstimate(_ context.Context, _ models.Product, targetDate *time.Time) (models.ShippingDetails, error) {
	return c.shipping.estimate(targetDate), nil
}
