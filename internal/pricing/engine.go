// Package pricing derives ingredient cost and selling price from recipes.
package pricing

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/recipe"
	"github.com/shopspring/decimal"
)

type CatalogReader interface {
	FindProductByID(ctx context.Context, id string) (*model.Product, error)
	FindRecipe(ctx context.Context, productID string) (*model.Recipe, error)
}

type ItemReader interface {
	FindItemByName(ctx context.Context, name string) (*model.InventoryItem, error)
}

type Quote struct {
	ProductID string          `json:"product_id"`
	Cost      decimal.Decimal `json:"cost"`
	Markup    decimal.Decimal `json:"markup"`
	Price     decimal.Decimal `json:"price"`
	// Unresolved ingredients were priced at zero.
	Unresolved []string `json:"unresolved,omitempty"`
}

type Engine struct {
	catalog CatalogReader
	items   ItemReader
}

func NewEngine(catalog CatalogReader, items ItemReader) *Engine {
	return &Engine{catalog: catalog, items: items}
}

// CostOf sums ingredient quantity times unit cost. A product without a recipe
// costs zero; ingredients without an inventory item contribute zero.
func (e *Engine) CostOf(ctx context.Context, productID string) (decimal.Decimal, error) {
	cost, _, err := e.cost(ctx, productID)
	return cost, err
}

// PriceOf is ceil(cost * (1 + markup)), with model.DefaultMarkup for unknown products.
func (e *Engine) PriceOf(ctx context.Context, productID string) (decimal.Decimal, error) {
	q, err := e.Quote(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Price, nil
}

func (e *Engine) Quote(ctx context.Context, productID string) (*Quote, error) {
	cost, unresolved, err := e.cost(ctx, productID)
	if err != nil {
		return nil, err
	}

	markup := model.DefaultMarkup
	p, err := e.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		markup = p.Markup
	}

	return &Quote{
		ProductID:  productID,
		Cost:       cost,
		Markup:     markup,
		Price:      Price(cost, markup),
		Unresolved: unresolved,
	}, nil
}

// Price rounds up to whole currency units so it never falls below cost plus markup.
func Price(cost, markup decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(1).Add(markup)).Ceil()
}

func (e *Engine) cost(ctx context.Context, productID string) (decimal.Decimal, []string, error) {
	r, err := e.catalog.FindRecipe(ctx, productID)
	if err != nil {
		return decimal.Zero, nil, err
	}
	if r == nil {
		return decimal.Zero, nil, nil
	}

	var lookupErr error
	lines := recipe.Resolve(r, func(name string) *model.InventoryItem {
		if lookupErr != nil {
			return nil
		}
		item, err := e.items.FindItemByName(ctx, name)
		if err != nil {
			lookupErr = err
		}
		return item
	})
	if lookupErr != nil {
		return decimal.Zero, nil, lookupErr
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(recipe.LineCost(line))
	}
	return total, recipe.Unresolved(lines), nil
}
