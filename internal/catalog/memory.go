// internal/catalog/memory.go
package catalog

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/config"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"
)

// demoProducts is the fixed demo dataset, preserved in storage order.
var demoProducts = []models.Product{
	{ID: "1", Name: "Floral Summer Skirt", Price: 35.99, Color: "Floral", Size: "S", Store: "StoreA", Stock: 10, Description: "Beautiful floral pattern"},
	{ID: "2", Name: "White Athletic Sneakers", Price: 65.99, Color: "White", Size: "8", Store: "StoreB", Stock: 5, Description: "Classic white sneakers"},
	{ID: "3", Name: "Casual Denim Jacket", Price: 80, Color: "Blue", Size: "M", Store: "StoreA", Stock: 8, Description: "Casual denim jacket"},
	{ID: "4", Name: "Cocktail Dress", Price: 89.99, Color: "Black", Size: "S", Store: "StoreB", Stock: 15, Description: "Elegant cocktail dress"},
	{ID: "5", Name: "Casual Denim Jacket", Price: 75.99, Color: "Blue", Size: "M", Store: "StoreB", Stock: 6, Description: "Casual denim jacket"},
	{ID: "6", Name: "Casual Denim Jacket", Price: 82.99, Color: "Blue", Size: "M", Store: "StoreC", Stock: 4, Description: "Casual denim jacket"},
}

var demoPolicies = map[string]models.ReturnPolicy{
	"StoreA": {Store: "StoreA", DaysAllowed: 30, FreeReturns: true, Conditions: "Items must be unworn with tags"},
	"StoreB": {Store: "StoreB", DaysAllowed: 14, FreeReturns: false, Conditions: "Return shipping fee applies"},
	"StoreC": {Store: "StoreC", DaysAllowed: 21, FreeReturns: true, Conditions: "Free returns within 21 days"},
}

var demoPromoCodes = map[string]float64{
	"SAVE10":   0.10,
	"SUMMER20": 0.20,
}

// Words too generic to count as search keywords.
var searchStopwords = map[string]struct{}{
	"a": {}, "the": {}, "in": {}, "with": {}, "and": {},
	"or": {}, "for": {}, "to": {}, "under": {},
}

// MemoryStore is the in-memory catalog backend.
type MemoryStore struct {
	products   []models.Product
	policies   map[string]models.ReturnPolicy
	promoCodes map[string]float64
	shipping   shippingEstimator
	logger     logger.Logger
}

// NewMemoryStore creates a MemoryStore seeded with the demo dataset.
func NewMemoryStore(shipCfg config.ShippingConfig, clk clock.Clock, rng *rand.Rand, log logger.Logger) *MemoryStore {
	return &MemoryStore{
		products:   demoProducts,
		policies:   demoPolicies,
		promoCodes: demoPromoCodes,
		shipping:   shippingEstimator{cfg: shipCfg, clk: clk, rng: rng},
		logger:     log.With(map[string]interface{}{"catalog": "memory"}),
	}
}

// NewMemoryStoreFromFixture creates a MemoryStore backed by a validated
// fixture instead of the built-in demo data.
func NewMemoryStoreFromFixture(f *Fixture, shipCfg config.ShippingConfig, clk clock.Clock, rng *rand.Rand, log logger.Logger) *MemoryStore {
	policies := make(map[string]models.ReturnPolicy, len(f.ReturnPolicies))
	for _, p := range f.ReturnPolicies {
		policies[p.Store] = p
	}
	return &MemoryStore{
		products:   f.Products,
		policies:   policies,
		promoCodes: f.PromoCodes,
		shipping:   shippingEstimator{cfg: shipCfg, clk: clk, rng: rng},
		logger:     log.With(map[string]interface{}{"catalog": "memory"}),
	}
}

// SearchProducts matches query keywords against name+description+color,
// then applies the optional filters: inclusive price ceiling, exact
// case-insensitive color and size. Results keep storage order.
func (s *MemoryStore) SearchProducts(_ context.Context, query string, maxPrice *float64, color, size *string) ([]models.Product, error) {
	keywords := searchKeywords(query)

	results := []models.Product{}
	for _, p := range s.products {
		text := strings.ToLower(p.Name + " " + p.Description + " " + p.Color)

		matched := false
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		if maxPrice != nil && p.Price > *maxPrice {
			continue
		}
		if color != nil && !strings.EqualFold(*color, p.Color) {
			continue
		}
		if size != nil && !strings.EqualFold(*size, p.Size) {
			continue
		}

		results = append(results, p)
	}

	s.logger.Debug("search completed", map[string]interface{}{
		"keywords": keywords,
		"results":  len(results),
	})
	return results, nil
}

func searchKeywords(query string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if _, skip := searchStopwords[word]; skip {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// ComparePrices returns store→price for every product whose name contains
// productName as a case-insensitive substring.
func (s *MemoryStore) ComparePrices(_ context.Context, productName string) (map[string]float64, error) {
	needle := strings.ToLower(productName)
	results := make(map[string]float64)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			results[p.Store] = p.Price
		}
	}
	return results, nil
}

func (s *MemoryStore) ReturnPolicy(_ context.Context, store string) (*models.ReturnPolicy, error) {
	policy, ok := s.policies[store]
	if !ok {
		return nil, nil
	}
	return &policy, nil
}

// ApplyDiscount returns price × (1 − fraction) for a known code, nil for
// an unknown one.
func (s *MemoryStore) ApplyDiscount(_ context.Context, price float64, code string) (*float64, error) {
	fraction, ok := s.promoCodes[code]
	if !ok {
		return nil, nil
	}
	final := price * (1 - fraction)
	return &final, nil
}

func (s *MemoryStore) ShippingEstimate(_ context.Context, _ models.Product, targetDate *time.Time) (models.ShippingDetails, error) {
	return s.shipping.estimate(targetDate), nil
}
