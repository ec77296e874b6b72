package dto

import "github.com/fekuna/omnipos-juicebar-service/internal/model"

type InventoryFilters struct {
	LowStock bool // If true, only items with quantity <= reorder level
}

type MovementFilters struct {
	ItemName     string
	MovementType model.MovementType
	ReferenceID  string
	Limit        int
}
