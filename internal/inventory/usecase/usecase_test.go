package usecase

import (
	"context"
	"errors"
	"testing"

	catalogRepo "github.com/fekuna/omnipos-juicebar-service/internal/catalog/repository"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory/dto"
	invRepo "github.com/fekuna/omnipos-juicebar-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc      inventory.UseCase
	items   *invRepo.MemoryRepository
	catalog *catalogRepo.MemoryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	catalog := catalogRepo.NewMemoryRepository()
	for _, r := range testutil.Recipes() {
		r := r
		require.NoError(t, catalog.SaveRecipe(ctx, &r))
	}
	items := invRepo.NewMemoryRepository()
	require.NoError(t, items.AdjustStockWithMovements(ctx, testutil.InventoryItems(), nil))

	return &fixture{
		uc:      NewInventoryUseCase(items, catalog, logger.NewNop()),
		items:   items,
		catalog: catalog,
	}
}

func (f *fixture) quantity(t *testing.T, name string) decimal.Decimal {
	t.Helper()
	item, err := f.items.FindItemByName(context.Background(), name)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func (f *fixture) snapshot(t *testing.T) map[string]string {
	t.Helper()
	items, err := f.items.FindAllItems(context.Background(), nil)
	require.NoError(t, err)
	out := make(map[string]string, len(items))
	for _, i := range items {
		out[i.Name] = i.Quantity.String()
	}
	return out
}

func TestAvailableServings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		productID string
		want      int
	}{
		{"P001", 57},  // floor(20 / 0.35), mango limits
		{"P002", 60},  // floor(30 / 0.5), watermelon limits
		{"P003", 125}, // floor(10 / 0.08), lemon limits
		{"P404", 0},   // no recipe
	}
	for _, tt := range tests {
		t.Run(tt.productID, func(t *testing.T) {
			got, err := f.uc.AvailableServings(ctx, tt.productID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableServings_EdgeCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("empty recipe yields zero", func(t *testing.T) {
		require.NoError(t, f.catalog.SaveRecipe(ctx, &model.Recipe{ProductID: "EMPTY"}))
		got, err := f.uc.AvailableServings(ctx, "EMPTY")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("missing inventory item yields zero", func(t *testing.T) {
		require.NoError(t, f.catalog.SaveRecipe(ctx, &model.Recipe{ProductID: "GHOST", Ingredients: model.IngredientList{
			{InventoryName: "Cups", Quantity: testutil.Dec("1"), Unit: "pcs"},
			{InventoryName: "Dragonfruit", Quantity: testutil.Dec("0.2"), Unit: "kg"},
		}}))
		got, err := f.uc.AvailableServings(ctx, "GHOST")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("zero quantity ingredients impose no limit", func(t *testing.T) {
		require.NoError(t, f.catalog.SaveRecipe(ctx, &model.Recipe{ProductID: "GARNISH", Ingredients: model.IngredientList{
			{InventoryName: "Mint", Quantity: decimal.Zero, Unit: "g"},
			{InventoryName: "Cups", Quantity: testutil.Dec("1"), Unit: "pcs"},
		}}))
		got, err := f.uc.AvailableServings(ctx, "GARNISH")
		require.NoError(t, err)
		assert.Equal(t, 200, got)
	})
}

func TestReserveAndConsume_DeductsExactly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.ReserveAndConsume(ctx, "P001", 2, "S1"))

	assert.Equal(t, "19.3", f.quantity(t, "Mango").String())
	assert.Equal(t, "7.96", f.quantity(t, "Sugar").String())
	assert.Equal(t, "14.8", f.quantity(t, "Ice").String())
	assert.Equal(t, "198", f.quantity(t, "Cups").String())
	assert.Equal(t, "30", f.quantity(t, "Watermelon").String(), "untouched")

	movements, err := f.uc.ListMovements(ctx, &dto.MovementFilters{MovementType: model.MovementSale})
	require.NoError(t, err)
	require.Len(t, movements, 4)
	for _, m := range movements {
		require.NotNil(t, m.ReferenceID)
		assert.Equal(t, "S1", *m.ReferenceID)
		assert.True(t, m.QuantityChange.IsNegative())
	}
}

func TestReverseConsumption_RestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before := map[string]decimal.Decimal{}
	for _, name := range []string{"Mango", "Sugar", "Ice", "Cups"} {
		before[name] = f.quantity(t, name)
	}

	require.NoError(t, f.uc.ReserveAndConsume(ctx, "P001", 2, "S1"))
	require.NoError(t, f.uc.ReserveAndConsume(ctx, "P001", 1, "S2"))
	require.NoError(t, f.uc.ReverseConsumption(ctx, "S1"))

	assert.Equal(t, "19.65", f.quantity(t, "Mango").String(), "only S2 stays consumed")
	require.NoError(t, f.uc.ReverseConsumption(ctx, "S2"))
	for name, want := range before {
		assert.True(t, want.Equal(f.quantity(t, name)), "%s: want %s, got %s", name, want, f.quantity(t, name))
	}

	adjustments, err := f.uc.ListMovements(ctx, &dto.MovementFilters{MovementType: model.MovementAdjustment, ReferenceID: "S1"})
	require.NoError(t, err)
	require.Len(t, adjustments, 4)
	for _, m := range adjustments {
		assert.True(t, m.QuantityChange.IsPositive())
	}
}

func TestReverseConsumption_UnknownReferenceIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.ReserveAndConsume(ctx, "P001", 1, "S1"))
	want := f.snapshot(t)

	require.NoError(t, f.uc.ReverseConsumption(ctx, "S404"))
	require.NoError(t, f.uc.ReverseConsumption(ctx, ""))

	assert.Equal(t, want, f.snapshot(t))
}

func TestReserveAndConsume_BeyondAvailabilityLeavesInventoryUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.snapshot(t)

	for i := 0; i < 2; i++ {
		err := f.uc.ReserveAndConsume(ctx, "P001", 58, "")

		var stockErr *inventory.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.True(t, errors.Is(err, inventory.ErrInsufficientStock))
		assert.Equal(t, "Mango", stockErr.Ingredient)
		assert.Equal(t, "20.3", stockErr.Required.String())
		assert.Equal(t, "20", stockErr.Available.String())
		assert.Equal(t, "kg", stockErr.Unit)
		assert.Equal(t, before, f.snapshot(t))
	}

	movements, err := f.uc.ListMovements(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestReserveAndConsume_UpToAvailabilityEmptiesLimitingItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.ReserveAndConsume(ctx, "P002", 60, ""))

	assert.True(t, f.quantity(t, "Watermelon").IsZero())
	servings, err := f.uc.AvailableServings(ctx, "P002")
	require.NoError(t, err)
	assert.Equal(t, 0, servings)
	assert.False(t, f.quantity(t, "Watermelon").IsNegative())
}

func TestReserveAndConsume_MissingItemNamesIngredient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.catalog.SaveRecipe(ctx, &model.Recipe{ProductID: "P009", Ingredients: model.IngredientList{
		{InventoryName: "Cups", Quantity: testutil.Dec("1"), Unit: "pcs"},
		{InventoryName: "Kiwi", Quantity: testutil.Dec("0.25"), Unit: "kg"},
	}}))

	err := f.uc.ReserveAndConsume(ctx, "P009", 2, "")

	var stockErr *inventory.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Kiwi", stockErr.Ingredient)
	assert.Equal(t, "0.5", stockErr.Required.String())
	assert.True(t, stockErr.Available.IsZero())
	assert.Equal(t, "200", f.quantity(t, "Cups").String())
}

func TestReserveAndConsume_DuplicateIngredientsAreSummed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.catalog.SaveRecipe(ctx, &model.Recipe{ProductID: "DOUBLE", Ingredients: model.IngredientList{
		{InventoryName: "Lemon", Quantity: testutil.Dec("6"), Unit: "kg"},
		{InventoryName: "Lemon", Quantity: testutil.Dec("5"), Unit: "kg"},
	}}))

	err := f.uc.ReserveAndConsume(ctx, "DOUBLE", 1, "")

	var stockErr *inventory.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "11", stockErr.Required.String())
	assert.Equal(t, "10", f.quantity(t, "Lemon").String())
}

func TestReserveAndConsume_RoundsToThreePlaces(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.catalog.SaveRecipe(ctx, &model.Recipe{ProductID: "FINE", Ingredients: model.IngredientList{
		{InventoryName: "Lemon", Quantity: testutil.Dec("0.3333"), Unit: "kg"},
	}}))

	require.NoError(t, f.uc.ReserveAndConsume(ctx, "FINE", 1, ""))

	assert.Equal(t, "9.667", f.quantity(t, "Lemon").String())
}

func TestReserveAndConsume_RejectsBadRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.uc.ReserveAndConsume(ctx, "P001", 0, ""), inventory.ErrInvalidQuantity)
	assert.ErrorIs(t, f.uc.ReserveAndConsume(ctx, "P404", 1, ""), inventory.ErrRecipeNotFound)
	assert.ErrorIs(t, f.uc.CheckStock(ctx, "P404", 1), inventory.ErrRecipeNotFound)
}

func TestCheckStock_DoesNotMutate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.snapshot(t)

	require.NoError(t, f.uc.CheckStock(ctx, "P001", 57))
	assert.ErrorIs(t, f.uc.CheckStock(ctx, "P001", 58), inventory.ErrInsufficientStock)
	assert.Equal(t, before, f.snapshot(t))
}

func TestReplenish(t *testing.T) {
	ctx := context.Background()

	t.Run("adds quantity and overwrites cost", func(t *testing.T) {
		f := newFixture(t)
		cost := testutil.Dec("130")
		item, err := f.uc.Replenish(ctx, &dto.ReplenishInput{ItemName: "Mango", AddQuantity: testutil.Dec("5.5"), NewCostPerUnit: &cost})

		require.NoError(t, err)
		assert.Equal(t, "25.5", item.Quantity.String())
		assert.Equal(t, "130", item.CostPerUnit.String())
		assert.Equal(t, "25.5", f.quantity(t, "Mango").String())

		movements, err := f.uc.ListMovements(ctx, &dto.MovementFilters{ItemName: "Mango"})
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, model.MovementReplenish, movements[0].MovementType)
	})

	t.Run("negative cost is ignored", func(t *testing.T) {
		f := newFixture(t)
		cost := testutil.Dec("-1")
		item, err := f.uc.Replenish(ctx, &dto.ReplenishInput{ItemName: "Sugar", AddQuantity: testutil.Dec("1"), NewCostPerUnit: &cost})

		require.NoError(t, err)
		assert.Equal(t, "45", item.CostPerUnit.String())
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Replenish(ctx, &dto.ReplenishInput{ItemName: "Sugar", AddQuantity: decimal.Zero})
		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
		assert.Equal(t, "8", f.quantity(t, "Sugar").String())
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Replenish(ctx, &dto.ReplenishInput{ItemName: "Papaya", AddQuantity: testutil.Dec("1")})
		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	})
}

func TestSaveItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.uc.SaveItem(ctx, &dto.SaveItemInput{
		Name: "Kiwi", Unit: "kg", Quantity: testutil.Dec("4"), ReorderLevel: testutil.Dec("5"), CostPerUnit: testutil.Dec("200"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	low, err := f.uc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Kiwi", low[0].Name)

	updated, err := f.uc.SaveItem(ctx, &dto.SaveItemInput{
		Name: "Kiwi", Unit: "kg", Quantity: testutil.Dec("9"), ReorderLevel: testutil.Dec("5"), CostPerUnit: testutil.Dec("210"),
	})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)

	movements, err := f.uc.ListMovements(ctx, &dto.MovementFilters{ItemName: "Kiwi"})
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "5", movements[0].QuantityChange.String())

	_, err = f.uc.SaveItem(ctx, &dto.SaveItemInput{Name: "Bad", Unit: "kg", Quantity: testutil.Dec("-1")})
	assert.ErrorIs(t, err, inventory.ErrInvalidItem)

	_, err = f.uc.GetItem(ctx, "Bad")
	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}
