// internal/assistant/handlers/dispatcher.go
package handlers

import (
	"context"
	"time"

	"shopping-assistant/internal/assistant/parser"
	"shopping-assistant/internal/catalog"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/common/metrics"
	"shopping-assistant/internal/models"

	"github.com/google/uuid"
)

// Dispatcher parses a raw query and routes the resulting intent to one of
// the three handlers. The return branch needs a store and the comparison
// branch needs a product name; anything else falls through to search.
type Dispatcher struct {
	parser     *parser.Parser
	search     *SearchHandler
	comparison *ComparisonHandler
	returns    *ReturnHandler
	logger     logger.Logger
}

func NewDispatcher(p *parser.Parser, cat catalog.Catalog, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		parser:     p,
		search:     NewSearchHandler(cat, log),
		comparison: NewComparisonHandler(cat, log),
		returns:    NewReturnHandler(cat, log),
		logger:     log.With(map[string]interface{}{"component": "dispatcher"}),
	}
}

func (d *Dispatcher) HandleQuery(ctx context.Context, query string) (string, error) {
	requestID := uuid.NewString()
	log := d.logger.With(map[string]interface{}{"requestId": requestID})

	intent := d.parser.Parse(query)
	start := time.Now()

	var response string
	var err error
	switch {
	case intent.QueryType == models.QueryTypeReturn && intent.Store != nil:
		response, err = d.returns.Execute(ctx, intent)
	case intent.QueryType == models.QueryTypeComparison && intent.ProductName != nil:
		response, err = d.comparison.Execute(ctx, intent)
	default:
		response, err = d.search.Execute(ctx, intent)
	}

	metrics.QueriesTotal.WithLabelValues(string(intent.QueryType)).Inc()
	metrics.QueryDuration.WithLabelValues(string(intent.QueryType)).Observe(time.Since(start).Seconds())

	if err != nil {
		log.Error("query handling failed", map[string]interface{}{
			"queryType": intent.QueryType,
			"error":     err.Error(),
		})
		return "", err
	}

	log.Info("query handled", map[string]interface{}{
		"queryType": intent.QueryType,
		"duration":  time.Since(start).String(),
	})
	return response, nil
}
