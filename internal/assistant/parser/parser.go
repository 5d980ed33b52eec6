// internal/assistant/parser/parser.go
package parser

import (
	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/logger"
	"shopping-assistant/internal/models"
)

// Parser turns a raw query string into a structured Intent. All field
// extractors run unconditionally; no extractor result affects another.
type Parser struct {
	clock  clock.Clock
	logger logger.Logger
}

func New(clk clock.Clock, log logger.Logger) *Parser {
	return &Parser{
		clock:  clk,
		logger: log.With(map[string]interface{}{"component": "parser"}),
	}
}

func (p *Parser) Parse(query string) models.Intent {
	intent := models.Intent{
		ProductName:    extractProductName(query),
		MaxPrice:       extractPrice(query),
		Size:           extractSize(query),
		Color:          extractColor(query),
		Store:          extractStore(query),
		DeliveryTarget: extractDeliveryDate(query, p.clock.Now()),
		DiscountCode:   extractDiscountCode(query),
		QueryType:      classifyQuery(query),
	}

	p.logger.Debug("query parsed", map[string]interface{}{
		"queryType":      intent.QueryType,
		"hasProductName": intent.ProductName != nil,
		"hasMaxPrice":    intent.MaxPrice != nil,
		"hasStore":       intent.Store != nil,
		"hasDelivery":    intent.DeliveryTarget != nil,
		"hasDiscount":    intent.DiscountCode != nil,
	})

	return intent
}
