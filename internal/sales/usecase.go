package sales

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
)

type UseCase interface {
	CommitSale(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error)
	Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error)
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error)

	// DailySummary aggregates the sales made on the local calendar day of day.
	DailySummary(ctx context.Context, day time.Time) (*dto.DailySummary, error)
}

// Refresher recomputes derived state after the sale history changes.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Observer is told the outcome of every sale request.
type Observer interface {
	SaleCommitted(sale *model.Sale)
	SaleRejected(err error)
}
