package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default text values substituted for missing fields.
const (
	DefaultProduct  = "Unknown Product"
	DefaultCategory = "Uncategorized"
	DefaultCustomer = "Unknown"
	DefaultRegion   = "Unknown Region"
)

// Record is one sales row after reconciliation and normalization.
type Record struct {
	// Date is the order time. Always set.
	Date time.Time `json:"date"`
	// Product is the product name.
	Product string `json:"product"`
	// Category is the product category.
	Category string `json:"category"`
	// SalesAmount is the order amount. Always finite and positive.
	SalesAmount decimal.Decimal `json:"salesAmount"`
	// Customer identifies the buyer.
	Customer string `json:"customer"`
	// Region is the sales region, country or state.
	Region string `json:"region"`
	// Units is the number of items sold.
	Units int `json:"units"`
	// Price is the unit price (zero when not supplied).
	Price decimal.Decimal `json:"price"`
}
