package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// stockPrecision is the number of decimal places kept after every stock mutation.
const stockPrecision = 3

type inventoryUseCase struct {
	// mu keeps one stock mutation in flight at a time, so a check and the
	// deduction that follows it see the same quantities.
	mu       sync.Mutex
	repo     inventory.Repository
	recipes  inventory.RecipeFinder
	validate *validator.Validate
	now      func() time.Time
	logger   logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, recipes inventory.RecipeFinder, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		recipes:  recipes,
		validate: validator.New(),
		now:      time.Now,
		logger:   log,
	}
}

func (uc *inventoryUseCase) SaveItem(ctx context.Context, input *dto.SaveItemInput) (*model.InventoryItem, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}
	if input.Quantity.IsNegative() || input.ReorderLevel.IsNegative() || input.CostPerUnit.IsNegative() {
		return nil, inventory.ErrInvalidItem
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.FindItemByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	item := model.InventoryItem{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Unit:         input.Unit,
		Quantity:     input.Quantity.Round(stockPrecision),
		ReorderLevel: input.ReorderLevel,
		CostPerUnit:  input.CostPerUnit,
		UpdatedAt:    now,
	}
	quantityBefore := decimal.Zero
	if existing != nil {
		item.ID = existing.ID
		quantityBefore = existing.Quantity
	}

	var movements []model.InventoryMovement
	if !item.Quantity.Equal(quantityBefore) {
		movements = append(movements, model.InventoryMovement{
			ID:             uuid.New().String(),
			ItemName:       item.Name,
			MovementType:   model.MovementAdjustment,
			QuantityChange: item.Quantity.Sub(quantityBefore),
			QuantityBefore: quantityBefore,
			QuantityAfter:  item.Quantity,
			CreatedAt:      now,
		})
	}

	if err := uc.repo.AdjustStockWithMovements(ctx, []model.InventoryItem{item}, movements); err != nil {
		return nil, err
	}
	return &item, nil
}

func (uc *inventoryUseCase) GetItem(ctx context.Context, name string) (*model.InventoryItem, error) {
	item, err := uc.repo.FindItemByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, inventory.ErrItemNotFound
	}
	return item, nil
}

func (uc *inventoryUseCase) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	return uc.repo.FindAllItems(ctx, nil)
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	return uc.repo.FindAllItems(ctx, &dto.InventoryFilters{LowStock: true})
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, error) {
	return uc.repo.ListMovements(ctx, filters)
}

// AvailableServings is the number of units the limiting ingredient allows.
// A missing or empty recipe, or any missing inventory item, yields zero.
func (uc *inventoryUseCase) AvailableServings(ctx context.Context, productID string) (int, error) {
	r, err := uc.recipes.FindRecipe(ctx, productID)
	if err != nil {
		return 0, err
	}
	if r == nil || len(r.Ingredients) == 0 {
		return 0, nil
	}

	items, err := uc.repo.FindAllItems(ctx, nil)
	if err != nil {
		return 0, err
	}

	best := int64(-1)
	for _, line := range recipe.Resolve(r, recipe.IndexItems(items)) {
		n, ok := recipe.LineServings(line)
		if !ok {
			continue
		}
		if best < 0 || n < best {
			best = n
		}
	}
	if best < 0 {
		return 0, nil
	}
	return int(best), nil
}

func (uc *inventoryUseCase) CheckStock(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, err := uc.plan(ctx, productID, quantity)
	return err
}

func (uc *inventoryUseCase) ReserveAndConsume(ctx context.Context, productID string, quantity int, referenceID string) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	plan, err := uc.plan(ctx, productID, quantity)
	if err != nil {
		return err
	}

	now := uc.now()
	var refID *string
	if referenceID != "" {
		refID = &referenceID
	}

	items := make([]model.InventoryItem, 0, len(plan))
	movements := make([]model.InventoryMovement, 0, len(plan))
	for _, c := range plan {
		item := *c.line.Item
		before := item.Quantity
		after := decimal.Max(decimal.Zero, before.Sub(c.required)).Round(stockPrecision)

		item.Quantity = after
		item.UpdatedAt = now
		items = append(items, item)

		movements = append(movements, model.InventoryMovement{
			ID:             uuid.New().String(),
			ItemName:       item.Name,
			MovementType:   model.MovementSale,
			QuantityChange: after.Sub(before),
			QuantityBefore: before,
			QuantityAfter:  after,
			ReferenceID:    refID,
			CreatedAt:      now,
		})
	}

	if err := uc.repo.AdjustStockWithMovements(ctx, items, movements); err != nil {
		return err
	}

	for _, item := range items {
		if item.IsLowStock() {
			uc.logger.Warn("Inventory item at or below reorder level",
				zap.String("item", item.Name),
				zap.String("quantity", item.Quantity.String()),
				zap.String("reorder_level", item.ReorderLevel.String()),
			)
		}
	}
	return nil
}

func (uc *inventoryUseCase) ReverseConsumption(ctx context.Context, referenceID string) error {
	// An empty reference would match every sale movement.
	if referenceID == "" {
		return nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	taken, err := uc.repo.ListMovements(ctx, &dto.MovementFilters{
		MovementType: model.MovementSale,
		ReferenceID:  referenceID,
	})
	if err != nil {
		return err
	}
	if len(taken) == 0 {
		return nil
	}

	now := uc.now()
	items := make([]model.InventoryItem, 0, len(taken))
	movements := make([]model.InventoryMovement, 0, len(taken))
	for _, m := range taken {
		existing, err := uc.repo.FindItemByName(ctx, m.ItemName)
		if err != nil {
			return err
		}
		if existing == nil {
			continue
		}

		item := *existing
		before := item.Quantity
		item.Quantity = before.Sub(m.QuantityChange).Round(stockPrecision)
		item.UpdatedAt = now
		items = append(items, item)

		movements = append(movements, model.InventoryMovement{
			ID:             uuid.New().String(),
			ItemName:       item.Name,
			MovementType:   model.MovementAdjustment,
			QuantityChange: item.Quantity.Sub(before),
			QuantityBefore: before,
			QuantityAfter:  item.Quantity,
			ReferenceID:    &referenceID,
			CreatedAt:      now,
		})
	}

	if err := uc.repo.AdjustStockWithMovements(ctx, items, movements); err != nil {
		return err
	}

	uc.logger.Warn("Sale consumption reversed",
		zap.String("reference_id", referenceID),
		zap.Int("items", len(items)),
	)
	return nil
}

func (uc *inventoryUseCase) Replenish(ctx context.Context, input *dto.ReplenishInput) (*model.InventoryItem, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}
	if !input.AddQuantity.IsPositive() {
		return nil, inventory.ErrInvalidQuantity
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.FindItemByName(ctx, input.ItemName)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, inventory.ErrItemNotFound
	}

	now := uc.now()
	item := *existing
	before := item.Quantity
	item.Quantity = before.Add(input.AddQuantity).Round(stockPrecision)
	if input.NewCostPerUnit != nil && !input.NewCostPerUnit.IsNegative() {
		item.CostPerUnit = *input.NewCostPerUnit
	}
	item.UpdatedAt = now

	var refID *string
	if input.ReferenceID != "" {
		refID = &input.ReferenceID
	}
	movement := model.InventoryMovement{
		ID:             uuid.New().String(),
		ItemName:       item.Name,
		MovementType:   model.MovementReplenish,
		QuantityChange: item.Quantity.Sub(before),
		QuantityBefore: before,
		QuantityAfter:  item.Quantity,
		ReferenceID:    refID,
		CreatedAt:      now,
	}

	if err := uc.repo.AdjustStockWithMovements(ctx, []model.InventoryItem{item}, []model.InventoryMovement{movement}); err != nil {
		return nil, err
	}

	uc.logger.Info("Inventory replenished",
		zap.String("item", item.Name),
		zap.String("added", input.AddQuantity.String()),
		zap.String("quantity", item.Quantity.String()),
		zap.String("cost_per_unit", item.CostPerUnit.String()),
	)
	return &item, nil
}

type consumption struct {
	line     recipe.Line
	required decimal.Decimal
}

// plan resolves the recipe for quantity units and checks every ingredient.
// Ingredients naming the same item are summed. Callers must hold uc.mu.
func (uc *inventoryUseCase) plan(ctx context.Context, productID string, quantity int) ([]consumption, error) {
	r, err := uc.recipes.FindRecipe(ctx, productID)
	if err != nil {
		return nil, err
	}
	if r == nil || len(r.Ingredients) == 0 {
		return nil, inventory.ErrRecipeNotFound
	}

	items, err := uc.repo.FindAllItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	units := decimal.NewFromInt(int64(quantity))
	var plan []consumption
	seen := make(map[string]int)
	for _, line := range recipe.Resolve(r, recipe.IndexItems(items)) {
		if !line.Ingredient.Quantity.IsPositive() {
			continue
		}
		required := line.Ingredient.Quantity.Mul(units)
		if i, ok := seen[line.Ingredient.InventoryName]; ok {
			plan[i].required = plan[i].required.Add(required)
			continue
		}
		seen[line.Ingredient.InventoryName] = len(plan)
		plan = append(plan, consumption{line: line, required: required})
	}
	if len(plan) == 0 {
		return nil, inventory.ErrRecipeNotFound
	}

	for _, c := range plan {
		if c.line.Missing() {
			return nil, &inventory.InsufficientStockError{
				Ingredient: c.line.Ingredient.InventoryName,
				Required:   c.required,
				Available:  decimal.Zero,
				Unit:       c.line.Ingredient.Unit,
			}
		}
		if c.line.Item.Quantity.LessThan(c.required) {
			return nil, &inventory.InsufficientStockError{
				Ingredient: c.line.Ingredient.InventoryName,
				Required:   c.required,
				Available:  c.line.Item.Quantity,
				Unit:       c.line.Ingredient.Unit,
			}
		}
	}
	return plan, nil
}
