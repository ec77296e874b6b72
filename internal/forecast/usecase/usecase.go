package usecase

import (
	"context"
	"sync"
	"time"

	catalogDto "github.com/fekuna/omnipos-juicebar-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/forecast"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	salesDto "github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"go.uber.org/zap"
)

type ProductLister interface {
	FindAllProducts(ctx context.Context, filters *catalogDto.ProductFilters) ([]model.Product, error)
}

type SaleLister interface {
	FindAll(ctx context.Context, filters *salesDto.SaleFilters) ([]model.Sale, error)
}

type forecastUseCase struct {
	mu          sync.RWMutex
	products    ProductLister
	sales       SaleLister
	signal      forecast.Signal
	predictions []model.Prediction
	now         func() time.Time
	logger      logger.ZapLogger
}

// NewForecastUseCase builds the forecaster. Prediction dates are calendar
// days in loc; nil means time.Local.
func NewForecastUseCase(products ProductLister, sales SaleLister, signal forecast.Signal, loc *time.Location, log logger.ZapLogger) forecast.UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &forecastUseCase{
		products:    products,
		sales:       sales,
		signal:      signal,
		predictions: []model.Prediction{},
		now:         func() time.Time { return time.Now().In(loc) },
		logger:      log,
	}
}

func (uc *forecastUseCase) Current(ctx context.Context) []model.Prediction {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.Prediction, len(uc.predictions))
	copy(out, uc.predictions)
	return out
}

func (uc *forecastUseCase) Refresh(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.recompute(ctx)
}

func (uc *forecastUseCase) Signal() forecast.Signal {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.signal
}

func (uc *forecastUseCase) SetSignal(ctx context.Context, signal forecast.Signal) ([]model.Prediction, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.signal = signal
	if err := uc.recompute(ctx); err != nil {
		return nil, err
	}

	out := make([]model.Prediction, len(uc.predictions))
	copy(out, uc.predictions)
	return out, nil
}

func (uc *forecastUseCase) recompute(ctx context.Context) error {
	now := uc.now()

	products, err := uc.products.FindAllProducts(ctx, nil)
	if err != nil {
		return err
	}
	recent, err := uc.sales.FindAll(ctx, &salesDto.SaleFilters{From: now.Add(-forecast.Window)})
	if err != nil {
		return err
	}

	uc.predictions = forecast.Predict(products, recent, uc.signal, now)
	uc.logger.Debug("Forecast recomputed",
		zap.Int("products", len(products)),
		zap.Int("recent_sales", len(recent)),
		zap.Float64("intensity", uc.signal.Intensity),
	)
	return nil
}
