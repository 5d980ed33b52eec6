// internal/assistant/handlers/returns.go
package handlers

import (
	"context"
	"fmt"

	"shopping-assistant/internal/catalog"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"
)

// ReturnHandler answers return-policy questions for a named store. The
// dispatcher only routes here when a store was parsed.
type ReturnHandler struct {
	catalog catalog.Catalog
	logger  logger.Logger
}

func NewReturnHandler(cat catalog.Catalog, log logger.Logger) *ReturnHandler {
	return &ReturnHandler{
		catalog: cat,
		logger:  log.With(map[string]interface{}{"handler": "return"}),
	}
}

func (h *ReturnHandler) Execute(ctx context.Context, intent models.Intent) (string, error) {
	store := *intent.Store

	policy, err := h.catalog.ReturnPolicy(ctx, store)
	if err != nil {
		return "", fmt.Errorf("return policy: %w", err)
	}

	if policy == nil {
		h.logger.Warn("no return policy found", map[string]interface{}{"store": store})
		return fmt.Sprintf("Sorry, I couldn't find return policy information for %s", store), nil
	}

	freeText := "Returns are free"
	if !policy.FreeReturns {
		freeText = "Return shipping fee applies"
	}
	return fmt.Sprintf("%s accepts returns within %d days. %s. %s",
		store, policy.DaysAllowed, freeText, policy.Conditions), nil
}
