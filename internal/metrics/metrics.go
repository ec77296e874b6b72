// Package metrics exposes sale and notification counters for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/lock"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "juicebar"

// Rejection reasons used as the reason label.
const (
	ReasonInvalidInput      = "invalid_input"
	ReasonRecipeMissing     = "recipe_missing"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonBusy              = "busy"
	ReasonOther             = "other"
)

type Metrics struct {
	registry *prometheus.Registry

	salesCommitted *prometheus.CounterVec
	salesRejected  *prometheus.CounterVec
	revenue        prometheus.Counter
	notifications  *prometheus.CounterVec
}

// New creates the collectors on a private registry so tests and multiple
// containers never collide on the default one.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.salesCommitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_committed_total",
		Help:      "Committed sales by product.",
	}, []string{"product_id"})
	m.salesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_rejected_total",
		Help:      "Rejected sale requests by reason.",
	}, []string{"reason"})
	m.revenue = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "revenue_rupees_total",
		Help:      "Sum of committed sale totals.",
	})
	m.notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Recorded notifications by template and status.",
	}, []string{"template_id", "status"})

	m.registry.MustRegister(m.salesCommitted, m.salesRejected, m.revenue, m.notifications)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) SaleCommitted(sale *model.Sale) {
	m.salesCommitted.WithLabelValues(sale.ProductID).Add(float64(sale.Quantity))
	m.revenue.Add(sale.Total.InexactFloat64())
}

func (m *Metrics) SaleRejected(err error) {
	m.salesRejected.WithLabelValues(RejectionReason(err)).Inc()
}

func (m *Metrics) NotificationRecorded(entry *model.NotificationLogEntry) {
	if entry == nil {
		return
	}
	m.notifications.WithLabelValues(entry.TemplateID, string(entry.Status)).Inc()
}

func RejectionReason(err error) string {
	var (
		stockErr  *inventory.InsufficientStockError
		recipeErr *sales.RecipeMissingError
	)
	switch {
	case errors.Is(err, sales.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.As(err, &recipeErr):
		return ReasonRecipeMissing
	case errors.As(err, &stockErr):
		return ReasonInsufficientStock
	case errors.Is(err, lock.ErrLockBusy):
		return ReasonBusy
	default:
		return ReasonOther
	}
}

type notificationUseCase struct {
	notification.UseCase
	m *Metrics
}

// InstrumentNotifications counts every dispatched notification.
func InstrumentNotifications(next notification.UseCase, m *Metrics) notification.UseCase {
	return &notificationUseCase{UseCase: next, m: m}
}

func (n *notificationUseCase) Dispatch(ctx context.Context, to string, tmpl notification.Template, vars notification.Variables) *model.NotificationLogEntry {
	entry := n.UseCase.Dispatch(ctx, to, tmpl, vars)
	n.m.NotificationRecorded(entry)
	return entry
}
