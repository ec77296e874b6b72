package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-juicebar-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	items     map[string]model.InventoryItem
	order     []string
	movements []model.InventoryMovement // most recent first
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]model.InventoryItem),
	}
}

func (r *MemoryRepository) FindItemByName(ctx context.Context, name string) (*model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryRepository) FindAllItems(ctx context.Context, f *dto.InventoryFilters) ([]model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.InventoryItem, 0, len(r.order))
	for _, name := range r.order {
		item := r.items[name]
		if f != nil && f.LowStock && !item.IsLowStock() {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *MemoryRepository) AdjustStockWithMovements(ctx context.Context, items []model.InventoryItem, movements []model.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if _, ok := r.items[item.Name]; !ok {
			r.order = append(r.order, item.Name)
		}
		r.items[item.Name] = item
	}

	if len(movements) > 0 {
		logged := make([]model.InventoryMovement, 0, len(movements)+len(r.movements))
		for i := len(movements) - 1; i >= 0; i-- {
			logged = append(logged, movements[i])
		}
		r.movements = append(logged, r.movements...)
	}
	return nil
}

func (r *MemoryRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movements := []model.InventoryMovement{}
	for _, m := range r.movements {
		if f != nil {
			if f.ItemName != "" && m.ItemName != f.ItemName {
				continue
			}
			if f.MovementType != "" && m.MovementType != f.MovementType {
				continue
			}
			if f.ReferenceID != "" && (m.ReferenceID == nil || *m.ReferenceID != f.ReferenceID) {
				continue
			}
			if f.Limit > 0 && len(movements) >= f.Limit {
				break
			}
		}
		movements = append(movements, m)
	}
	return movements, nil
}
