package recipe

import (
	"testing"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolve_MissingItemIsKeptAsLine(t *testing.T) {
	lookup := IndexItems([]model.InventoryItem{
		{Name: "Mango", Quantity: dec("20"), CostPerUnit: dec("120")},
	})
	r := &model.Recipe{ProductID: "P001", Ingredients: model.IngredientList{
		{InventoryName: "Mango", Quantity: dec("0.35"), Unit: "kg"},
		{InventoryName: "Mangoo", Quantity: dec("1"), Unit: "kg"},
	}}

	lines := Resolve(r, lookup)

	require.Len(t, lines, 2)
	assert.False(t, lines[0].Missing())
	assert.True(t, lines[1].Missing())
	assert.Equal(t, []string{"Mangoo"}, Unresolved(lines))
}

func TestResolve_NilRecipe(t *testing.T) {
	assert.Nil(t, Resolve(nil, IndexItems(nil)))
}

func TestLineCost_MissingItemContributesZero(t *testing.T) {
	missing := Line{Ingredient: model.Ingredient{InventoryName: "Ghost", Quantity: dec("3")}}
	assert.True(t, LineCost(missing).IsZero())

	present := Line{
		Ingredient: model.Ingredient{InventoryName: "Sugar", Quantity: dec("0.02")},
		Item:       &model.InventoryItem{Name: "Sugar", CostPerUnit: dec("45")},
	}
	assert.True(t, dec("0.9").Equal(LineCost(present)))
}

func TestLineServings(t *testing.T) {
	mango := &model.InventoryItem{Name: "Mango", Quantity: dec("20")}

	n, ok := LineServings(Line{Ingredient: model.Ingredient{Quantity: dec("0.35")}, Item: mango})
	assert.True(t, ok)
	assert.Equal(t, int64(57), n)

	n, ok = LineServings(Line{Ingredient: model.Ingredient{Quantity: dec("0.35")}})
	assert.True(t, ok)
	assert.Equal(t, int64(0), n, "missing item supplies nothing")

	_, ok = LineServings(Line{Ingredient: model.Ingredient{Quantity: decimal.Zero}, Item: mango})
	assert.False(t, ok, "zero quantity imposes no limit")
}
