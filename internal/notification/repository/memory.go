package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification/dto"
)

// MemoryRepository keeps the notification log most-recent-first.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []model.NotificationLogEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(ctx context.Context, entry *model.NotificationLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]model.NotificationLogEntry{*entry}, r.entries...)
	return nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.LogFilters) ([]model.NotificationLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.NotificationLogEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if f != nil {
			if f.Status != "" && e.Status != f.Status {
				continue
			}
			if f.TemplateID != "" && e.TemplateID != f.TemplateID {
				continue
			}
		}
		out = append(out, e)
		if f != nil && f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
