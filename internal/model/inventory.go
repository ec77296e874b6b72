package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID           string          `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"` // Unique, referenced by recipes
	Unit         string          `db:"unit" json:"unit"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	ReorderLevel decimal.Decimal `db:"reorder_level" json:"reorder_level"`
	CostPerUnit  decimal.Decimal `db:"cost_per_unit" json:"cost_per_unit"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// IsLowStock reports whether the item is at or below its reorder level.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.ReorderLevel)
}

type MovementType string

const (
	MovementSale       MovementType = "sale"
	MovementReplenish  MovementType = "replenish"
	MovementAdjustment MovementType = "adjustment"
)

type InventoryMovement struct {
	ID             string          `db:"id" json:"id"`
	ItemName       string          `db:"item_name" json:"item_name"`
	MovementType   MovementType    `db:"movement_type" json:"movement_type"`
	QuantityChange decimal.Decimal `db:"quantity_change" json:"quantity_change"`
	QuantityBefore decimal.Decimal `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  decimal.Decimal `db:"quantity_after" json:"quantity_after"`
	ReferenceID    *string         `db:"reference_id" json:"reference_id"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}
