// internal/models/intent.go
package models

import "time"

// Intent is the structured result of parsing one free-text query.
// Optional fields are nil when the query did not mention them; the
// record is assembled once by the parser and never mutated afterwards.
type Intent struct {
	ProductName    *string    `json:"productName,omitempty"`
	MaxPrice       *float64   `json:"maxPrice,omitempty"`
	Size           *string    `json:"size,omitempty"`
	Color          *string    `json:"color,omitempty"`
	Store          *string    `json:"store,omitempty"`
	DeliveryTarget *time.Time `json:"deliveryTarget,omitempty"`
	DiscountCode   *string    `json:"discountCode,omitempty"`
	QueryType      QueryType  `json:"queryType"`
}
