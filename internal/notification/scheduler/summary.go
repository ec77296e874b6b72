package scheduler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const noTopProduct = "N/A"

type SalesSummarizer interface {
	DailySummary(ctx context.Context, day time.Time) (*dto.DailySummary, error)
}

// SummaryJob sends the operator the day's takings and best seller.
type SummaryJob struct {
	sales      SalesSummarizer
	dispatcher notification.Dispatcher
	operator   string
	printer    *message.Printer
	logger     logger.ZapLogger
}

func NewSummaryJob(sales SalesSummarizer, dispatcher notification.Dispatcher, operator string, log logger.ZapLogger) *SummaryJob {
	return &SummaryJob{
		sales:      sales,
		dispatcher: dispatcher,
		operator:   operator,
		printer:    message.NewPrinter(language.MustParse("en-IN")),
		logger:     log,
	}
}

// Run matches the Job signature.
func (j *SummaryJob) Run(ctx context.Context, firedAt time.Time) {
	if _, err := j.Send(ctx, firedAt); err != nil {
		j.logger.Error("Failed to build daily summary", zap.Error(err))
	}
}

// Send aggregates the sales of day and dispatches the summary to the operator.
func (j *SummaryJob) Send(ctx context.Context, day time.Time) (*model.NotificationLogEntry, error) {
	summary, err := j.sales.DailySummary(ctx, day)
	if err != nil {
		return nil, err
	}

	top := summary.TopProductName
	if top == "" {
		top = noTopProduct
	}

	return j.dispatcher.Dispatch(ctx, j.operator, notification.DailySummaryTemplate, notification.Variables{
		Amount: j.printer.Sprintf("%d", summary.Total.Round(0).IntPart()),
		Juice:  top,
		Date:   summary.Day,
	}), nil
}
