package usecase

import (
	"context"
	"testing"

	catalogRepo "github.com/fekuna/omnipos-juicebar-service/internal/catalog/repository"
	customerRepo "github.com/fekuna/omnipos-juicebar-service/internal/customer/repository"
	invRepo "github.com/fekuna/omnipos-juicebar-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	notifRepo "github.com/fekuna/omnipos-juicebar-service/internal/notification/repository"
	salesRepo "github.com/fekuna/omnipos-juicebar-service/internal/sales/repository"
	"github.com/fekuna/omnipos-juicebar-service/internal/snapshot"
	"github.com/fekuna/omnipos-juicebar-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySnapshots struct {
	saved *snapshot.Snapshot
}

func (m *memorySnapshots) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	m.saved = snap
	return nil
}

func (m *memorySnapshots) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	if m.saved == nil {
		return &snapshot.Snapshot{}, nil
	}
	return m.saved, nil
}

func emptyStores() Stores {
	return Stores{
		Catalog:       catalogRepo.NewMemoryRepository(),
		Inventory:     invRepo.NewMemoryRepository(),
		Customers:     customerRepo.NewMemoryRepository(),
		Sales:         salesRepo.NewMemoryRepository(),
		Notifications: notifRepo.NewMemoryRepository(),
	}
}

func TestSnapshot_SaveThenRestore(t *testing.T) {
	ctx := context.Background()
	store := &memorySnapshots{}

	src := emptyStores()
	for _, p := range testutil.Products() {
		p := p
		require.NoError(t, src.Catalog.SaveProduct(ctx, &p))
	}
	for _, r := range testutil.Recipes() {
		r := r
		require.NoError(t, src.Catalog.SaveRecipe(ctx, &r))
	}
	require.NoError(t, src.Inventory.AdjustStockWithMovements(ctx, testutil.InventoryItems(), nil))
	for _, c := range testutil.Customers() {
		c := c
		require.NoError(t, src.Customers.Save(ctx, &c))
	}
	require.NoError(t, src.Sales.Append(ctx, &model.Sale{ID: "S1", ProductID: "P001", Quantity: 1}))
	require.NoError(t, src.Sales.Append(ctx, &model.Sale{ID: "S2", ProductID: "P002", Quantity: 1}))

	require.NoError(t, NewSnapshotUseCase(store, src, logger.NewNop()).Save(ctx))
	require.NotNil(t, store.saved)
	assert.Len(t, store.saved.Items, 8)

	dst := emptyStores()
	restored, err := NewSnapshotUseCase(store, dst, logger.NewNop()).Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	products, err := dst.Catalog.FindAllProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	mango, err := dst.Inventory.FindItemByName(ctx, "Mango")
	require.NoError(t, err)
	require.NotNil(t, mango)
	assert.Equal(t, "20", mango.Quantity.String())

	history, err := dst.Sales.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "S2", history[0].ID, "order survives the round trip")
}

func TestSnapshot_RestoreNothing(t *testing.T) {
	restored, err := NewSnapshotUseCase(&memorySnapshots{}, emptyStores(), logger.NewNop()).Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, restored)
}
