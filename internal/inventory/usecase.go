package inventory

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type UseCase interface {
	SaveItem(ctx context.Context, input *dto.SaveItemInput) (*model.InventoryItem, error)
	GetItem(ctx context.Context, name string) (*model.InventoryItem, error)
	ListItems(ctx context.Context) ([]model.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]model.InventoryItem, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, error)

	// Core stock operations
	AvailableServings(ctx context.Context, productID string) (int, error)
	CheckStock(ctx context.Context, productID string, quantity int) error
	ReserveAndConsume(ctx context.Context, productID string, quantity int, referenceID string) error
	// ReverseConsumption puts back what ReserveAndConsume took under referenceID.
	ReverseConsumption(ctx context.Context, referenceID string) error
	Replenish(ctx context.Context, input *dto.ReplenishInput) (*model.InventoryItem, error)
}
