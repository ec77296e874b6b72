package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const SaleRequestedEvent = "SaleRequested"

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// SaleListener commits sales requested by remote terminals through the same
// serialized path as the HTTP API.
type SaleListener struct {
	reader  MessageReader
	uc      sales.UseCase
	backoff time.Duration
	logger  logger.ZapLogger
}

func NewSaleListener(reader MessageReader, uc sales.UseCase, logger logger.ZapLogger) *SaleListener {
	return &SaleListener{
		reader:  reader,
		uc:      uc,
		backoff: time.Second,
		logger:  logger,
	}
}

// NewKafkaReader builds the consumer-group reader the listener runs on.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

func (l *SaleListener) Start(ctx context.Context) {
	l.logger.Info("Starting Sale Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Sale Kafka Listener")
			return
		default:
			msg, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type SaleRequested struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	TerminalID  string            `json:"terminal_id"`
	ProductID   string            `json:"product_id"`
	Quantity    int               `json:"quantity"`
	PaymentMode model.PaymentMode `json:"payment_mode"`
	CustomerID  string            `json:"customer_id"`
}

func (l *SaleListener) processMessage(ctx context.Context, value []byte) {
	var event SaleRequested
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != SaleRequestedEvent {
		return
	}

	l.logger.Info("Processing SaleRequested event",
		zap.String("event_id", event.EventID),
		zap.String("terminal_id", event.Payload.TerminalID),
	)

	sale, err := l.uc.CommitSale(ctx, &dto.CommitSaleInput{
		ProductID:   event.Payload.ProductID,
		Quantity:    event.Payload.Quantity,
		PaymentMode: event.Payload.PaymentMode,
		CustomerID:  event.Payload.CustomerID,
	})
	if err != nil {
		// Rejections are final; a retry would see the same stock.
		l.logger.Warn("Sale request rejected",
			zap.String("event_id", event.EventID),
			zap.String("product_id", event.Payload.ProductID),
			zap.Error(err),
		)
		return
	}

	l.logger.Info("Sale request committed", zap.String("event_id", event.EventID), zap.String("sale_id", sale.ID))
}
