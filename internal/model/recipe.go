package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Recipe lists what one unit of a product consumes. There is at most one per product.
type Recipe struct {
	ProductID   string         `db:"product_id" json:"product_id"`
	Ingredients IngredientList `db:"ingredients" json:"ingredients"`
}

// Ingredient references an inventory item by name. Unit is informational only,
// quantities are never converted between units.
type Ingredient struct {
	InventoryName string          `json:"inventory_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
}

type IngredientList []Ingredient

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IngredientList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = IngredientList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported ingredients column type")
	}
}
