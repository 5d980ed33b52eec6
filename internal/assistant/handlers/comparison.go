// internal/assistant/handlers/comparison.go
package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"shopping-assistant/internal/catalog"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"
)

// ComparisonHandler lists per-store prices for the named product,
// ascending by price. A parsed price ceiling filters the listed stores;
// with no ceiling every store is shown.
type ComparisonHandler struct {
	catalog catalog.Catalog
	logger  logger.Logger
}

func NewComparisonHandler(cat catalog.Catalog, log logger.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		catalog: cat,
		logger:  log.With(map[string]interface{}{"handler": "comparison"}),
	}
}

func (h *ComparisonHandler) Execute(ctx context.Context, intent models.Intent) (string, error) {
	if intent.ProductName == nil {
		return "I couldn't determine which product you want to compare. Please specify the product name.", nil
	}
	productName := *intent.ProductName

	comparisons, err := h.catalog.ComparePrices(ctx, productName)
	if err != nil {
		return "", fmt.Errorf("compare prices: %w", err)
	}

	h.logger.Info("price comparison completed", map[string]interface{}{
		"product": productName,
		"stores":  len(comparisons),
	})

	if len(comparisons) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any price comparisons for %s.", productName), nil
	}

	type storePrice struct {
		store string
		price float64
	}
	sorted := make([]storePrice, 0, len(comparisons))
	for store, price := range comparisons {
		sorted = append(sorted, storePrice{store: store, price: price})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].price != sorted[j].price {
			return sorted[i].price < sorted[j].price
		}
		return sorted[i].store < sorted[j].store
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the prices for the %s across stores:\n", productName)
	for _, sp := range sorted {
		if intent.MaxPrice != nil && sp.price > *intent.MaxPrice {
			continue
		}
		fmt.Fprintf(&b, "- %s: $%.2f\n", sp.store, sp.price)
	}
	return b.String(), nil
}
