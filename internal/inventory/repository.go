package inventory

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type Repository interface {
	// Inventory items, keyed by unique name
	FindItemByName(ctx context.Context, name string) (*model.InventoryItem, error)
	FindAllItems(ctx context.Context, filters *dto.InventoryFilters) ([]model.InventoryItem, error)

	// AdjustStockWithMovements stores every item and logs every movement, or nothing at all.
	AdjustStockWithMovements(ctx context.Context, items []model.InventoryItem, movements []model.InventoryMovement) error

	// Movements / Audit, most recent first
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, error)
}

// RecipeFinder is the slice of the catalog the ledger reads.
type RecipeFinder interface {
	FindRecipe(ctx context.Context, productID string) (*model.Recipe, error)
}
