package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	sales []model.Sale // most-recent-first
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(ctx context.Context, sale *model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append([]model.Sale{*sale}, r.sales...)
	return nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if f != nil {
			if f.ProductID != "" && s.ProductID != f.ProductID {
				continue
			}
			if !f.From.IsZero() && s.CreatedAt.Before(f.From) {
				continue
			}
			if !f.To.IsZero() && !s.CreatedAt.Before(f.To) {
				continue
			}
		}
		out = append(out, s)
		if f != nil && f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
