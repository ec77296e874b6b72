package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/catalog"
	"github.com/fekuna/omnipos-juicebar-service/internal/customer"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/fekuna/omnipos-juicebar-service/internal/snapshot"
	"go.uber.org/zap"
)

// Stores are the owned in-memory collections a snapshot covers.
type Stores struct {
	Catalog       catalog.Repository
	Inventory     inventory.Repository
	Customers     customer.Repository
	Sales         sales.Repository
	Notifications notification.Repository
}

type snapshotUseCase struct {
	repo   snapshot.Repository
	stores Stores
	logger logger.ZapLogger
}

func NewSnapshotUseCase(repo snapshot.Repository, stores Stores, log logger.ZapLogger) snapshot.UseCase {
	return &snapshotUseCase{
		repo:   repo,
		stores: stores,
		logger: log,
	}
}

func (uc *snapshotUseCase) Capture(ctx context.Context) (*snapshot.Snapshot, error) {
	snap := &snapshot.Snapshot{TakenAt: time.Now()}
	var err error

	if snap.Products, err = uc.stores.Catalog.FindAllProducts(ctx, nil); err != nil {
		return nil, err
	}
	if snap.Recipes, err = uc.stores.Catalog.FindAllRecipes(ctx); err != nil {
		return nil, err
	}
	if snap.Items, err = uc.stores.Inventory.FindAllItems(ctx, nil); err != nil {
		return nil, err
	}
	if snap.Customers, _, err = uc.stores.Customers.FindAll(ctx, nil); err != nil {
		return nil, err
	}
	if snap.Sales, err = uc.stores.Sales.FindAll(ctx, nil); err != nil {
		return nil, err
	}
	if snap.Notifications, err = uc.stores.Notifications.FindAll(ctx, nil); err != nil {
		return nil, err
	}
	return snap, nil
}

func (uc *snapshotUseCase) Save(ctx context.Context) error {
	snap, err := uc.Capture(ctx)
	if err != nil {
		return err
	}
	if err := uc.repo.Save(ctx, snap); err != nil {
		return err
	}

	uc.logger.Info("Snapshot saved",
		zap.Int("products", len(snap.Products)),
		zap.Int("items", len(snap.Items)),
		zap.Int("sales", len(snap.Sales)),
	)
	return nil
}

func (uc *snapshotUseCase) Restore(ctx context.Context) (bool, error) {
	snap, err := uc.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	if snap == nil || snap.Empty() {
		uc.logger.Info("No snapshot to restore")
		return false, nil
	}

	for i := range snap.Products {
		if err := uc.stores.Catalog.SaveProduct(ctx, &snap.Products[i]); err != nil {
			return false, err
		}
	}
	for i := range snap.Recipes {
		if err := uc.stores.Catalog.SaveRecipe(ctx, &snap.Recipes[i]); err != nil {
			return false, err
		}
	}
	if err := uc.stores.Inventory.AdjustStockWithMovements(ctx, snap.Items, nil); err != nil {
		return false, err
	}
	for i := range snap.Customers {
		if err := uc.stores.Customers.Save(ctx, &snap.Customers[i]); err != nil {
			return false, err
		}
	}
	// Append oldest first so the stores end up most-recent-first again.
	for i := len(snap.Sales) - 1; i >= 0; i-- {
		if err := uc.stores.Sales.Append(ctx, &snap.Sales[i]); err != nil {
			return false, err
		}
	}
	for i := len(snap.Notifications) - 1; i >= 0; i-- {
		if err := uc.stores.Notifications.Append(ctx, &snap.Notifications[i]); err != nil {
			return false, err
		}
	}

	uc.logger.Info("Snapshot restored",
		zap.Int("products", len(snap.Products)),
		zap.Int("items", len(snap.Items)),
		zap.Int("sales", len(snap.Sales)),
	)
	return true, nil
}
