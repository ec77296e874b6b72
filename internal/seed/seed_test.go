package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipesReferenceKnownItems(t *testing.T) {
	items := map[string]bool{}
	for _, it := range InventoryItems() {
		items[it.Name] = true
	}
	products := map[string]bool{}
	for _, p := range Products() {
		products[p.ID] = true
	}

	for _, r := range Recipes() {
		assert.True(t, products[r.ProductID], r.ProductID)
		for _, ing := range r.Ingredients {
			assert.True(t, items[ing.InventoryName], ing.InventoryName)
		}
	}
}

func TestRepository_Load(t *testing.T) {
	repo := NewRepository()

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Empty())
	assert.Len(t, snap.Products, 3)
	assert.Len(t, snap.Items, 8)
	assert.Empty(t, snap.Sales)

	assert.NoError(t, repo.Save(context.Background(), snap))
}
