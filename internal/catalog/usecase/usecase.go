package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/catalog"
	"github.com/fekuna/omnipos-juicebar-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	repo     catalog.Repository
	items    catalog.ItemFinder
	listener catalog.ChangeListener
	validate *validator.Validate
	logger   logger.ZapLogger
}

// NewCatalogUseCase builds the catalog use case. listener may be nil.
func NewCatalogUseCase(repo catalog.Repository, items catalog.ItemFinder, listener catalog.ChangeListener, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:     repo,
		items:    items,
		listener: listener,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}

	markup := model.DefaultMarkup
	if input.Markup != nil {
		markup = *input.Markup
	}
	if markup.IsNegative() {
		return nil, catalog.ErrInvalidMarkup
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	} else {
		existing, err := uc.repo.FindProductByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, catalog.ErrProductExists
		}
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	var imageURL *string
	if input.ImageURL != "" {
		imageURL = &input.ImageURL
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		ImageURL:  imageURL,
		Markup:    markup,
		IsActive:  active,
	}
	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("Product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	uc.notifyChange(ctx)
	return p, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAllProducts(ctx, filters)
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}

	p, err := uc.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.IsActive = input.IsActive
	if input.ImageURL != "" {
		p.ImageURL = &input.ImageURL
	} else {
		p.ImageURL = nil
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}
	uc.notifyChange(ctx)
	return p, nil
}

// SetMarkup changes the markup used for future prices. Recorded sales keep
// the price they were committed with.
func (uc *catalogUseCase) SetMarkup(ctx context.Context, productID string, markup decimal.Decimal) (*model.Product, error) {
	if markup.IsNegative() {
		return nil, catalog.ErrInvalidMarkup
	}

	p, err := uc.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	p.Markup = markup
	p.UpdatedAt = time.Now()
	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("Product markup changed", zap.String("product_id", p.ID), zap.String("markup", markup.String()))
	uc.notifyChange(ctx)
	return p, nil
}

func (uc *catalogUseCase) GetRecipe(ctx context.Context, productID string) (*model.Recipe, error) {
	return uc.repo.FindRecipe(ctx, productID)
}

func (uc *catalogUseCase) UpdateRecipe(ctx context.Context, input *dto.UpdateRecipeInput) (*dto.RecipeUpdateResult, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}
	if _, err := uc.GetProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	ingredients := make(model.IngredientList, 0, len(input.Ingredients))
	for _, in := range input.Ingredients {
		if in.InventoryName == "" || !in.Quantity.IsPositive() {
			return nil, catalog.ErrInvalidRecipe
		}
		ingredients = append(ingredients, model.Ingredient{
			InventoryName: in.InventoryName,
			Quantity:      in.Quantity,
			Unit:          in.Unit,
		})
	}

	r := &model.Recipe{ProductID: input.ProductID, Ingredients: ingredients}
	if err := uc.repo.SaveRecipe(ctx, r); err != nil {
		return nil, err
	}

	unresolved, err := uc.unresolved(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(unresolved) > 0 {
		uc.logger.Warn("Recipe references unknown inventory items; they are priced at zero and block sales",
			zap.String("product_id", r.ProductID),
			zap.Strings("ingredients", unresolved),
		)
	}

	return &dto.RecipeUpdateResult{Recipe: r, Unresolved: unresolved}, nil
}

func (uc *catalogUseCase) unresolved(ctx context.Context, r *model.Recipe) ([]string, error) {
	var lookupErr error
	lines := recipe.Resolve(r, func(name string) *model.InventoryItem {
		item, err := uc.items.FindItemByName(ctx, name)
		if err != nil && lookupErr == nil {
			lookupErr = err
		}
		return item
	})
	if lookupErr != nil {
		return nil, lookupErr
	}
	return recipe.Unresolved(lines), nil
}

func (uc *catalogUseCase) notifyChange(ctx context.Context) {
	if uc.listener == nil {
		return
	}
	if err := uc.listener.Refresh(ctx); err != nil {
		uc.logger.Warn("Failed to refresh after catalog change", zap.Error(err))
	}
}
