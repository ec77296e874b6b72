// Package recipe resolves recipe ingredients against inventory and holds the
// lookup policy shared by pricing and the inventory ledger.
//
// Ingredients whose inventory item cannot be found are NOT errors: they cost
// nothing and make the product unservable. A misnamed ingredient therefore
// silently lowers the price. Callers that edit recipes should surface
// Unresolved names to the owner instead of relying on the engine to fail.
package recipe

import (
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/shopspring/decimal"
)

// Line is an ingredient paired with its inventory item. Item is nil when no
// item carries the ingredient's name.
type Line struct {
	Ingredient model.Ingredient
	Item       *model.InventoryItem
}

func (l Line) Missing() bool {
	return l.Item == nil
}

// ItemLookup finds an inventory item by name, returning nil when absent.
type ItemLookup func(name string) *model.InventoryItem

func Resolve(r *model.Recipe, lookup ItemLookup) []Line {
	if r == nil {
		return nil
	}
	lines := make([]Line, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		lines = append(lines, Line{Ingredient: ing, Item: lookup(ing.InventoryName)})
	}
	return lines
}

// IndexItems builds an ItemLookup over a snapshot of inventory items.
func IndexItems(items []model.InventoryItem) ItemLookup {
	byName := make(map[string]*model.InventoryItem, len(items))
	for i := range items {
		byName[items[i].Name] = &items[i]
	}
	return func(name string) *model.InventoryItem {
		return byName[name]
	}
}

// LineCost is quantity times unit cost. A missing item contributes zero.
func LineCost(l Line) decimal.Decimal {
	if l.Missing() {
		return decimal.Zero
	}
	return l.Ingredient.Quantity.Mul(l.Item.CostPerUnit)
}

// LineServings is how many units the line's item can supply. ok is false when the
// ingredient imposes no limit (non-positive quantity). A missing item supplies zero.
func LineServings(l Line) (servings int64, ok bool) {
	if !l.Ingredient.Quantity.IsPositive() {
		return 0, false
	}
	if l.Missing() {
		return 0, true
	}
	return l.Item.Quantity.Div(l.Ingredient.Quantity).Floor().IntPart(), true
}

// Unresolved returns the ingredient names that do not match any inventory item.
func Unresolved(lines []Line) []string {
	var names []string
	for _, l := range lines {
		if l.Missing() {
			names = append(names, l.Ingredient.InventoryName)
		}
	}
	return names
}
