// Package testutil exposes the starter data to package tests.
package testutil

import (
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/seed"
	"github.com/shopspring/decimal"
)

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Products() []model.Product             { return seed.Products() }
func InventoryItems() []model.InventoryItem { return seed.InventoryItems() }
func Recipes() []model.Recipe               { return seed.Recipes() }
func Customers() []model.Customer           { return seed.Customers() }
