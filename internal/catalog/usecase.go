package catalog

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	SetMarkup(ctx context.Context, productID string, markup decimal.Decimal) (*model.Product, error)

	GetRecipe(ctx context.Context, productID string) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, input *dto.UpdateRecipeInput) (*dto.RecipeUpdateResult, error)
}

// ChangeListener is told whenever the product set changes.
type ChangeListener interface {
	Refresh(ctx context.Context) error
}

// ItemFinder resolves recipe ingredients when reporting recipe integrity.
type ItemFinder interface {
	FindItemByName(ctx context.Context, name string) (*model.InventoryItem, error)
}
