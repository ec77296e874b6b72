package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-juicebar-service/internal/customer/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	customers map[string]model.Customer
	order     []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{customers: make(map[string]model.Customer)}
}

func (r *MemoryRepository) Save(ctx context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Customer, 0, len(r.order))
	for _, id := range r.order {
		c := r.customers[id]
		if f != nil {
			if f.HasContact != nil && c.HasContact() != *f.HasContact {
				continue
			}
			if q := strings.ToLower(f.SearchQuery); q != "" &&
				!strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(c.Phone, q) {
				continue
			}
		}
		matched = append(matched, c)
	}

	total := len(matched)
	if f != nil && f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start >= total {
			return []model.Customer{}, total, nil
		}
		end := min(start+f.PageSize, total)
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return nil
	}
	delete(r.customers, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
