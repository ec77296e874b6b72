package model

import "github.com/shopspring/decimal"

// DefaultMarkup applies to new products and to price lookups for unknown products.
var DefaultMarkup = decimal.RequireFromString("0.30")

type Product struct {
	BaseModel
	Name     string          `db:"name" json:"name"`
	ImageURL *string         `db:"image_url" json:"image_url"`
	Markup   decimal.Decimal `db:"markup" json:"markup"`
	IsActive bool            `db:"is_active" json:"is_active"`
}
