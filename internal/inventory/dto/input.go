package dto

import "github.com/shopspring/decimal"

type SaveItemInput struct {
	Name         string `validate:"required,max=64"`
	Unit         string `validate:"required,max=16"`
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal
	CostPerUnit  decimal.Decimal
}

type ReplenishInput struct {
	ItemName       string `validate:"required"`
	AddQuantity    decimal.Decimal
	NewCostPerUnit *decimal.Decimal // Ignored when nil or negative
	ReferenceID    string
}
