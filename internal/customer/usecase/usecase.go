package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/customer"
	"github.com/fekuna/omnipos-juicebar-service/internal/customer/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo     customer.Repository
	validate *validator.Validate
	logger   logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:     repo,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	} else {
		existing, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, customer.ErrCustomerExists
		}
	}

	now := time.Now()
	c := &model.Customer{
		BaseModel: model.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  input.Name,
		Phone: strings.TrimSpace(input.Phone),
	}

	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	if !c.HasContact() {
		uc.logger.Debug("Customer has no contact number; receipts will be skipped", zap.String("customer_id", c.ID))
	}
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, err
	}

	c, err := uc.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	c.Name = input.Name
	c.Phone = strings.TrimSpace(input.Phone)
	c.UpdatedAt = time.Now()

	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := uc.GetCustomer(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
