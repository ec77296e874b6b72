package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-juicebar-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

// MemoryRepository keeps products and recipes for the process lifetime.
// Listings preserve insertion order.
type MemoryRepository struct {
	mu           sync.RWMutex
	products     map[string]model.Product
	productOrder []string
	recipes      map[string]model.Recipe
	recipeOrder  []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: make(map[string]model.Product),
		recipes:  make(map[string]model.Recipe),
	}
}

func (r *MemoryRepository) SaveProduct(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		r.productOrder = append(r.productOrder, p.ID)
	}
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryRepository) FindProductByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryRepository) FindAllProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := ""
	activeOnly := false
	if f != nil {
		query = strings.ToLower(strings.TrimSpace(f.SearchQuery))
		activeOnly = f.ActiveOnly
	}

	products := make([]model.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		p := r.products[id]
		if activeOnly && !p.IsActive {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *MemoryRepository) SaveRecipe(ctx context.Context, recipe *model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[recipe.ProductID]; !ok {
		r.recipeOrder = append(r.recipeOrder, recipe.ProductID)
	}
	r.recipes[recipe.ProductID] = copyRecipe(*recipe)
	return nil
}

func (r *MemoryRepository) FindRecipe(ctx context.Context, productID string) (*model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[productID]
	if !ok {
		return nil, nil
	}
	c := copyRecipe(recipe)
	return &c, nil
}

func (r *MemoryRepository) FindAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]model.Recipe, 0, len(r.recipeOrder))
	for _, id := range r.recipeOrder {
		recipes = append(recipes, copyRecipe(r.recipes[id]))
	}
	return recipes, nil
}

func copyRecipe(r model.Recipe) model.Recipe {
	ingredients := make(model.IngredientList, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	return model.Recipe{ProductID: r.ProductID, Ingredients: ingredients}
}
