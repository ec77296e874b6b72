// Package seed holds the juice bar's starter catalog, stock and customers.
// It is loaded when there is no saved snapshot to restore.
package seed

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/snapshot"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Products() []model.Product {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return []model.Product{
		{BaseModel: model.BaseModel{ID: "P001", CreatedAt: now, UpdatedAt: now}, Name: "Mango Blast", Markup: dec("0.4"), IsActive: true},
		{BaseModel: model.BaseModel{ID: "P002", CreatedAt: now, UpdatedAt: now}, Name: "Watermelon Refresher", Markup: dec("0.35"), IsActive: true},
		{BaseModel: model.BaseModel{ID: "P003", CreatedAt: now, UpdatedAt: now}, Name: "Classic Lemonade", Markup: dec("0.3"), IsActive: true},
	}
}

func InventoryItems() []model.InventoryItem {
	item := func(id, name, unit, qty, reorder, cost string) model.InventoryItem {
		return model.InventoryItem{ID: id, Name: name, Unit: unit, Quantity: dec(qty), ReorderLevel: dec(reorder), CostPerUnit: dec(cost)}
	}
	return []model.InventoryItem{
		item("I001", "Mango", "kg", "20", "5", "120"),
		item("I002", "Watermelon", "kg", "30", "8", "35"),
		item("I003", "Lemon", "kg", "10", "3", "90"),
		item("I004", "Sugar", "kg", "8", "2", "45"),
		item("I005", "Ice", "kg", "15", "4", "10"),
		item("I006", "Cups", "pcs", "200", "50", "2"),
		item("I007", "Mint", "g", "500", "100", "0.3"),
		item("I008", "Salt", "g", "400", "100", "0.2"),
	}
}

func Recipes() []model.Recipe {
	ing := func(name, qty, unit string) model.Ingredient {
		return model.Ingredient{InventoryName: name, Quantity: dec(qty), Unit: unit}
	}
	return []model.Recipe{
		{ProductID: "P001", Ingredients: model.IngredientList{
			ing("Mango", "0.35", "kg"), ing("Sugar", "0.02", "kg"), ing("Ice", "0.1", "kg"), ing("Cups", "1", "pcs"),
		}},
		{ProductID: "P002", Ingredients: model.IngredientList{
			ing("Watermelon", "0.5", "kg"), ing("Sugar", "0.015", "kg"), ing("Ice", "0.1", "kg"), ing("Mint", "5", "g"), ing("Cups", "1", "pcs"),
		}},
		{ProductID: "P003", Ingredients: model.IngredientList{
			ing("Lemon", "0.08", "kg"), ing("Sugar", "0.018", "kg"), ing("Salt", "2", "g"), ing("Ice", "0.08", "kg"), ing("Cups", "1", "pcs"),
		}},
	}
}

func Customers() []model.Customer {
	return []model.Customer{
		{BaseModel: model.BaseModel{ID: "C001"}, Name: "Walk-in", Phone: ""},
		{BaseModel: model.BaseModel{ID: "C002"}, Name: "Aarav", Phone: "+91 9876543210"},
		{BaseModel: model.BaseModel{ID: "C003"}, Name: "Neha", Phone: "+91 9000000000"},
	}
}

// Snapshot returns the starter data as a snapshot with no history.
func Snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		TakenAt:   time.Now(),
		Products:  Products(),
		Recipes:   Recipes(),
		Items:     InventoryItems(),
		Customers: Customers(),
	}
}

// Repository serves the starter data as a read-only snapshot source.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	return Snapshot(), nil
}

// Save discards the snapshot.
func (r *Repository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	return nil
}
