// Package dashboard aggregates the owner's at-a-glance figures for today.
package dashboard

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SalesSummarizer interface {
	DailySummary(ctx context.Context, day time.Time) (*dto.DailySummary, error)
}

type LowStockLister interface {
	ListLowStock(ctx context.Context) ([]model.InventoryItem, error)
}

type PredictionReader interface {
	Current(ctx context.Context) []model.Prediction
}

type Overview struct {
	Day            string                `json:"day"`
	TodayTotal     decimal.Decimal       `json:"today_total"`
	ProfitToday    decimal.Decimal       `json:"profit_today"`
	SaleCount      int                   `json:"sale_count"`
	LowStockCount  int                   `json:"low_stock_count"`
	LowStock       []model.InventoryItem `json:"low_stock"`
	PredictedCups  int                   `json:"predicted_cups"`
	TopProductID   string                `json:"top_product_id,omitempty"`
	TopProductName string                `json:"top_product_name,omitempty"`
}

type Service struct {
	sales       SalesSummarizer
	inventory   LowStockLister
	predictions PredictionReader
	now         func() time.Time
	logger      logger.ZapLogger
}

// NewService builds the dashboard. "Today" is the calendar day in loc; nil
// means time.Local.
func NewService(sales SalesSummarizer, inventory LowStockLister, predictions PredictionReader, loc *time.Location, log logger.ZapLogger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		sales:       sales,
		inventory:   inventory,
		predictions: predictions,
		now:         func() time.Time { return time.Now().In(loc) },
		logger:      log,
	}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	summary, err := s.sales.DailySummary(ctx, s.now())
	if err != nil {
		return nil, err
	}

	low, err := s.inventory.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	cups := 0
	for _, p := range s.predictions.Current(ctx) {
		cups += p.PredictedQty
	}

	s.logger.Debug("Dashboard overview built",
		zap.String("day", summary.Day),
		zap.Int("sales", summary.SaleCount),
		zap.Int("low_stock", len(low)),
	)

	return &Overview{
		Day:            summary.Day,
		TodayTotal:     summary.Total,
		ProfitToday:    summary.Profit,
		SaleCount:      summary.SaleCount,
		LowStockCount:  len(low),
		LowStock:       low,
		PredictedCups:  cups,
		TopProductID:   summary.TopProductID,
		TopProductName: summary.TopProductName,
	}, nil
}
