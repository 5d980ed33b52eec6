// internal/models/product.go
package models

import "time"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Store       string  `json:"store"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

type ReturnPolicy struct {
	Store       string `json:"store"`
	DaysAllowed int    `json:"daysAllowed"`
	FreeReturns bool   `json:"freeReturns"`
	Conditions  string `json:"conditions"`
}

type ShippingDetails struct {
	Available     bool      `json:"available"`
	Cost          float64   `json:"cost"`
	EstimatedDays int       `json:"estimatedDays"`
	DeliveryDate  time.Time `json:"deliveryDate"`
}
