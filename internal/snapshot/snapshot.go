// Package snapshot saves the in-memory stores to Postgres on shutdown and
// loads them back on start. The stores stay authoritative while running.
package snapshot

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

// Snapshot holds every store's rows. Sales and Notifications are
// most-recent-first, matching their stores.
type Snapshot struct {
	TakenAt       time.Time
	Products      []model.Product
	Recipes       []model.Recipe
	Items         []model.InventoryItem
	Customers     []model.Customer
	Sales         []model.Sale
	Notifications []model.NotificationLogEntry
}

func (s *Snapshot) Empty() bool {
	return len(s.Products) == 0 && len(s.Recipes) == 0 && len(s.Items) == 0 &&
		len(s.Customers) == 0 && len(s.Sales) == 0 && len(s.Notifications) == 0
}

type Repository interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}

type UseCase interface {
	Capture(ctx context.Context) (*Snapshot, error)
	// Save captures the stores and replaces the stored snapshot.
	Save(ctx context.Context) error
	// Restore loads the stored snapshot into empty stores. It reports false
	// when there was nothing to restore.
	Restore(ctx context.Context) (bool, error)
}
