package dto

import (
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	ID       string // Optional, generated when empty
	Name     string `validate:"required,max=128"`
	ImageURL string
	Markup   *decimal.Decimal // Defaults to model.DefaultMarkup
	IsActive *bool            // Defaults to true
}

type UpdateProductInput struct {
	ID       string `validate:"required"`
	Name     string `validate:"required,max=128"`
	ImageURL string
	IsActive bool
}

type IngredientInput struct {
	InventoryName string          `json:"inventory_name" validate:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
}

type UpdateRecipeInput struct {
	ProductID   string            `validate:"required"`
	Ingredients []IngredientInput `validate:"dive"`
}

type RecipeUpdateResult struct {
	Recipe *model.Recipe `json:"recipe"`
	// Unresolved lists ingredient names with no matching inventory item. They
	// cost nothing and block sales until fixed.
	Unresolved []string `json:"unresolved"`
}
