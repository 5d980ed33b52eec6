// internal/assistant/handlers/search.go
package handlers

import (
	"context"
	"fmt"
	"strings"

	"shopping-assistant/internal/catalog"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"
)

// SearchHandler serves the default branch: find the first matching
// product and describe it, with shipping and discount details when the
// query asked for them.
type SearchHandler struct {
	catalog catalog.Catalog
	logger  logger.Logger
}

func NewSearchHandler(cat catalog.Catalog, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		catalog: cat,
		logger:  log.With(map[string]interface{}{"handler": "search"}),
	}
}

func (h *SearchHandler) Execute(ctx context.Context, intent models.Intent) (string, error) {
	query := ""
	if intent.ProductName != nil {
		query = *intent.ProductName
	}

	results, err := h.catalog.SearchProducts(ctx, query, intent.MaxPrice, intent.Color, intent.Size)
	if err != nil {
		return "", fmt.Errorf("search products: %w", err)
	}

	h.logger.Info("product search completed", map[string]interface{}{
		"query":   query,
		"results": len(results),
	})

	if len(results) == 0 {
		return "I couldn't find any products matching your criteria.", nil
	}

	// Catalog order is the only ranking; the first match wins.
	return h.formatProductResponse(ctx, results[0], intent)
}

func (h *SearchHandler) formatProductResponse(ctx context.Context, product models.Product, intent models.Intent) (string, error) {
	parts := []string{
		fmt.Sprintf("I found a %s in size %s for $%.2f at %s.",
			product.Name, product.Size, product.Price, product.Store),
		fmt.Sprintf("It's in stock (%d available).", product.Stock),
	}

	if intent.DeliveryTarget != nil {
		shipping, err := h.catalog.ShippingEstimate(ctx, product, intent.DeliveryTarget)
		if err != nil {
			return "", fmt.Errorf("shipping estimate: %w", err)
		}

		dateStr := shipping.DeliveryDate.Format("Monday, January 2")
		if shipping.Available {
			parts = append(parts, fmt.Sprintf(
				"It can be delivered by %s (estimated %d days) for $%.2f shipping.",
				dateStr, shipping.EstimatedDays, shipping.Cost))
		} else {
			parts = append(parts, fmt.Sprintf(
				"Sorry, we cannot guarantee delivery by your requested date. Estimated delivery would be %s.",
				dateStr))
		}
	}

	if intent.DiscountCode != nil {
		discounted, err := h.catalog.ApplyDiscount(ctx, product.Price, *intent.DiscountCode)
		if err != nil {
			return "", fmt.Errorf("apply discount: %w", err)
		}

		if discounted != nil {
			parts = append(parts, fmt.Sprintf(
				"With discount code '%s', the final price would be $%.2f.",
				*intent.DiscountCode, *discounted))
		} else {
			parts = append(parts, fmt.Sprintf(
				"The discount code '%s' is not valid.", *intent.DiscountCode))
		}
	}

	return strings.Join(parts, " "), nil
}
