package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleFilters struct {
	ProductID string
	From      time.Time // Inclusive, zero means unbounded
	To        time.Time // Exclusive, zero means unbounded
	Limit     int
}

type ProductQuantity struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type DailySummary struct {
	Day       string          `json:"day"` // YYYY-MM-DD
	Total     decimal.Decimal `json:"total"`
	Profit    decimal.Decimal `json:"profit"` // Against current ingredient cost
	SaleCount int             `json:"sale_count"`
	// Products is ordered by first appearance walking history most-recent-first.
	Products       []ProductQuantity `json:"products"`
	TopProductID   string            `json:"top_product_id"`
	TopProductName string            `json:"top_product_name"`
}
