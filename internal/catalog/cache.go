// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/common/metrics"
	"shopping-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

// CachedCatalog is a read-through Redis cache in front of another Catalog.
// Only the two lookup-heavy operations are cached; redis failures degrade
// to the inner catalog rather than failing the query.
type CachedCatalog struct {
	inner  Catalog
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedCatalog(inner Catalog, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedCatalog {
	return &CachedCatalog{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: log.With(map[string]interface{}{"catalog": "cached"}),
	}
}

func (c *CachedCatalog) SearchProducts(ctx context.Context, query string, maxPrice *float64, color, size *string) ([]models.Product, error) {
	key := searchCacheKey(query, maxPrice, color, size)

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		var products []models.Product
		if err := json.Unmarshal([]byte(val), &products); err == nil {
			metrics.CatalogCacheHits.WithLabelValues("search").Inc()
			return products, nil
		}
	}
	metrics.CatalogCacheMisses.WithLabelValues("search").Inc()

	products, err := c.inner.SearchProducts(ctx, query, maxPrice, color, size)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return products, nil
}

func (c *CachedCatalog) ComparePrices(ctx context.Context, productName string) (map[string]float64, error) {
	key := "catalog:compare:" + strings.ToLower(productName)

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		var prices map[string]float64
		if err := json.Unmarshal([]byte(val), &prices); err == nil {
			metrics.CatalogCacheHits.WithLabelValues("compare").Inc()
			return prices, nil
		}
	}
	metrics.CatalogCacheMisses.WithLabelValues("compare").Inc()

	prices, err := c.inner.ComparePrices(ctx, productName)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(prices); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return prices, nil
}

func (c *CachedCatalog) ReturnPolicy(ctx context.Context, store string) (*models.ReturnPolicy, error) {
	return c.inner.ReturnPolicy(ctx, store)
}

func (c *CachedCatalog) ApplyDiscount(ctx context.Context, price float64, code string) (*float64, error) {
	return c.inner.ApplyDiscount(ctx, price, code)
}

func (c *CachedCatalog) ShippingEstimate(ctx context.Context, product models.Product, targetDate *time.Time) (models.ShippingDetails, error) {
	return c.inner.ShippingEstimate(ctx, product, targetDate)
}

func searchCacheKey(query string, maxPrice *float64, color, size *string) string {
	price := "-"
	if maxPrice != nil {
		price = fmt.Sprintf("%.2f", *maxPrice)
	}
	return strings.Join([]string{
		"catalog:search",
		strings.ToLower(query),
		price,
		strOrDash(color),
		strOrDash(size),
	}, ":")
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return strings.ToLower(*s)
}
