package sales

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
)

// Repository is the append-only sale history, returned most-recent-first.
type Repository interface {
	Append(ctx context.Context, sale *model.Sale) error
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error)
}
