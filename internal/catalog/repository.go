package catalog

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type Repository interface {
	// Products
	SaveProduct(ctx context.Context, product *model.Product) error
	FindProductByID(ctx context.Context, id string) (*model.Product, error)
	FindAllProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)

	// Recipes, one per product
	SaveRecipe(ctx context.Context, recipe *model.Recipe) error
	FindRecipe(ctx context.Context, productID string) (*model.Recipe, error)
	FindAllRecipes(ctx context.Context) ([]model.Recipe, error)
}
