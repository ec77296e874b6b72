package customer

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/customer/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type Repository interface {
	Save(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error)
	Delete(ctx context.Context, id string) error
}
