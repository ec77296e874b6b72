package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/lock"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName = "github.com/fekuna/omnipos-juicebar-service/internal/sales"

	// saleLockKey guards the whole inventory: a sale may touch any item.
	saleLockKey = "lock:juicebar:sale"

	receiptDateLayout = "02/01/2006, 15:04:05"
)

type CatalogReader interface {
	FindProductByID(ctx context.Context, id string) (*model.Product, error)
	FindRecipe(ctx context.Context, productID string) (*model.Recipe, error)
}

type CustomerFinder interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
}

type Pricer interface {
	CostOf(ctx context.Context, productID string) (decimal.Decimal, error)
	PriceOf(ctx context.Context, productID string) (decimal.Decimal, error)
}

// Deps are the collaborators a sale touches. Refresher and Observer may be
// nil. Tracer defaults to the global provider's tracer.
type Deps struct {
	Repo       sales.Repository
	Catalog    CatalogReader
	Customers  CustomerFinder
	Inventory  inventory.UseCase
	Pricing    Pricer
	Dispatcher notification.Dispatcher
	Locker     lock.Locker
	Refresher  sales.Refresher
	Observer   sales.Observer
	Tracer     trace.Tracer
	Logger     logger.ZapLogger
}

type salesUseCase struct {
	Deps
	tracer trace.Tracer
	now    func() time.Time
}

func NewSalesUseCase(deps Deps) sales.UseCase {
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &salesUseCase{
		Deps:   deps,
		tracer: tracer,
		now:    time.Now,
	}
}

func (uc *salesUseCase) CommitSale(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error) {
	ctx, span := uc.tracer.Start(ctx, "commit_sale")
	defer span.End()

	span.SetAttributes(
		attribute.String("sale.product_id", input.ProductID),
		attribute.Int("sale.quantity", input.Quantity),
		attribute.String("sale.payment_mode", string(input.PaymentMode)),
	)

	sale, err := uc.commit(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if uc.Observer != nil {
			uc.Observer.SaleRejected(err)
		}
		uc.Logger.Warn("Sale rejected",
			zap.String("product_id", input.ProductID),
			zap.Int("quantity", input.Quantity),
			zap.Error(err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.String("sale.id", sale.ID), attribute.String("sale.total", sale.Total.String()))
	span.SetStatus(codes.Ok, "Sale committed")
	if uc.Observer != nil {
		uc.Observer.SaleCommitted(sale)
	}

	uc.sendReceipt(ctx, sale)
	uc.refresh(ctx)
	return sale, nil
}

func (uc *salesUseCase) commit(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	release, err := uc.Locker.Lock(ctx, saleLockKey)
	if err != nil {
		return nil, err
	}
	defer release()

	recipe, err := uc.Catalog.FindRecipe(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if recipe == nil || len(recipe.Ingredients) == 0 {
		return nil, &sales.RecipeMissingError{ProductID: input.ProductID}
	}

	if err := uc.Inventory.CheckStock(ctx, input.ProductID, input.Quantity); err != nil {
		return nil, mapLedgerError(input.ProductID, err)
	}

	priceEach, err := uc.Pricing.PriceOf(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	saleID := uuid.New().String()
	if err := uc.Inventory.ReserveAndConsume(ctx, input.ProductID, input.Quantity, saleID); err != nil {
		return nil, mapLedgerError(input.ProductID, err)
	}

	sale := &model.Sale{
		ID:          saleID,
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		PriceEach:   priceEach,
		Total:       priceEach.Mul(decimal.NewFromInt(int64(input.Quantity))),
		PaymentMode: input.PaymentMode,
		CustomerID:  input.CustomerID,
		CreatedAt:   uc.now(),
	}
	if err := uc.Repo.Append(ctx, sale); err != nil {
		uc.Logger.Error("Failed to record committed sale", zap.String("sale_id", saleID), zap.Error(err))
		if revErr := uc.Inventory.ReverseConsumption(ctx, saleID); revErr != nil {
			uc.Logger.Error("Failed to restore stock for unrecorded sale", zap.String("sale_id", saleID), zap.Error(revErr))
		}
		return nil, err
	}

	uc.Logger.Info("Sale committed",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", sale.ProductID),
		zap.Int("quantity", sale.Quantity),
		zap.String("total", sale.Total.String()),
	)
	return sale, nil
}

func validateInput(input *dto.CommitSaleInput) error {
	switch {
	case input.ProductID == "":
		return fmt.Errorf("%w: product is required", sales.ErrInvalidInput)
	case input.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", sales.ErrInvalidInput)
	case !input.PaymentMode.Valid():
		return fmt.Errorf("%w: unsupported payment mode %q", sales.ErrInvalidInput, input.PaymentMode)
	}
	return nil
}

func mapLedgerError(productID string, err error) error {
	if errors.Is(err, inventory.ErrRecipeNotFound) {
		return &sales.RecipeMissingError{ProductID: productID}
	}
	return err
}

func (uc *salesUseCase) sendReceipt(ctx context.Context, sale *model.Sale) {
	var phone string
	if sale.CustomerID != "" {
		c, err := uc.Customers.FindByID(ctx, sale.CustomerID)
		if err != nil {
			uc.Logger.Warn("Customer lookup failed, receipt will be skipped", zap.String("customer_id", sale.CustomerID), zap.Error(err))
		} else if c != nil {
			phone = c.Phone
		}
	}

	name := sale.ProductID
	if p, err := uc.Catalog.FindProductByID(ctx, sale.ProductID); err == nil && p != nil {
		name = p.Name
	}

	uc.Dispatcher.Dispatch(ctx, phone, notification.ReceiptTemplate, notification.Variables{
		Amount: sale.Total.String(),
		Items:  fmt.Sprintf("%d x %s", sale.Quantity, name),
		Date:   sale.CreatedAt.Format(receiptDateLayout),
	})
}

func (uc *salesUseCase) refresh(ctx context.Context) {
	if uc.Refresher == nil {
		return
	}
	if err := uc.Refresher.Refresh(ctx); err != nil {
		uc.Logger.Warn("Failed to refresh forecast after sale", zap.Error(err))
	}
}

// Checkout commits each cart line in order. A rejected line does not undo
// the lines committed before it.
func (uc *salesUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error) {
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", sales.ErrInvalidInput)
	}

	result := &dto.CheckoutResult{Lines: make([]dto.CheckoutLineResult, 0, len(input.Lines))}
	for _, line := range input.Lines {
		sale, err := uc.CommitSale(ctx, &dto.CommitSaleInput{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			PaymentMode: input.PaymentMode,
			CustomerID:  input.CustomerID,
		})

		lr := dto.CheckoutLineResult{ProductID: line.ProductID, Quantity: line.Quantity}
		if err != nil {
			lr.Error = err.Error()
			result.Rejected++
		} else {
			lr.Sale = sale
			result.Committed++
		}
		result.Lines = append(result.Lines, lr)
	}
	return result, nil
}

func (uc *salesUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error) {
	return uc.Repo.FindAll(ctx, filters)
}

func (uc *salesUseCase) DailySummary(ctx context.Context, day time.Time) (*dto.DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	history, err := uc.Repo.FindAll(ctx, &dto.SaleFilters{From: start, To: start.AddDate(0, 0, 1)})
	if err != nil {
		return nil, err
	}

	summary := &dto.DailySummary{
		Day:       start.Format(time.DateOnly),
		Total:     decimal.Zero,
		Profit:    decimal.Zero,
		SaleCount: len(history),
		Products:  []dto.ProductQuantity{},
	}

	index := make(map[string]int)
	costs := make(map[string]decimal.Decimal)
	for _, s := range history {
		summary.Total = summary.Total.Add(s.Total)

		cost, ok := costs[s.ProductID]
		if !ok {
			if cost, err = uc.Pricing.CostOf(ctx, s.ProductID); err != nil {
				return nil, err
			}
			costs[s.ProductID] = cost
		}
		qty := decimal.NewFromInt(int64(s.Quantity))
		summary.Profit = summary.Profit.Add(s.PriceEach.Sub(cost).Mul(qty))

		i, ok := index[s.ProductID]
		if !ok {
			i = len(summary.Products)
			index[s.ProductID] = i
			summary.Products = append(summary.Products, dto.ProductQuantity{ProductID: s.ProductID, Name: s.ProductID})
		}
		summary.Products[i].Quantity += s.Quantity
	}

	// Ties keep the product seen first; the comparison is strict.
	top := -1
	for i := range summary.Products {
		if p, err := uc.Catalog.FindProductByID(ctx, summary.Products[i].ProductID); err == nil && p != nil {
			summary.Products[i].Name = p.Name
		}
		if top < 0 || summary.Products[i].Quantity > summary.Products[top].Quantity {
			top = i
		}
	}
	if top >= 0 {
		summary.TopProductID = summary.Products[top].ProductID
		summary.TopProductName = summary.Products[top].Name
	}

	return summary, nil
}
