package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	commitErr error
	filters   *dto.SaleFilters
	day       time.Time
}

func (s *stubUseCase) CommitSale(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error) {
	if s.commitErr != nil {
		return nil, s.commitErr
	}
	return &model.Sale{ID: "S1", ProductID: input.ProductID, Quantity: input.Quantity, PriceEach: decimal.NewFromInt(65)}, nil
}

func (s *stubUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error) {
	return &dto.CheckoutResult{Committed: len(input.Lines)}, nil
}

func (s *stubUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error) {
	s.filters = filters
	return []model.Sale{{ID: "S1"}}, nil
}

func (s *stubUseCase) DailySummary(ctx context.Context, day time.Time) (*dto.DailySummary, error) {
	s.day = day
	return &dto.DailySummary{Day: day.Format(time.DateOnly)}, nil
}

var _ sales.UseCase = (*stubUseCase)(nil)

func newRouter(uc sales.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSalesHandler(uc, time.Local, logger.NewNop()).RegisterRoutes(r.Group("/api/v1", auth.RoleMiddleware()))
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommitSale_Created(t *testing.T) {
	r := newRouter(&stubUseCase{})

	w := serve(r, http.MethodPost, "/api/v1/sales", `{"product_id":"P001","quantity":2,"payment_mode":"Cash"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCommitSale_MissingProduct(t *testing.T) {
	r := newRouter(&stubUseCase{})

	w := serve(r, http.MethodPost, "/api/v1/sales", `{"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommitSale_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", sales.ErrInvalidInput, http.StatusBadRequest},
		{"recipe missing", &sales.RecipeMissingError{ProductID: "P009"}, http.StatusUnprocessableEntity},
		{"insufficient stock", &inventory.InsufficientStockError{
			Ingredient: "Mango", Required: decimal.RequireFromString("20.3"), Available: decimal.NewFromInt(20), Unit: "kg",
		}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&stubUseCase{commitErr: tt.err})

			w := serve(r, http.MethodPost, "/api/v1/sales", `{"product_id":"P001","quantity":58,"payment_mode":"Cash"}`)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestCheckout_RequiresLines(t *testing.T) {
	r := newRouter(&stubUseCase{})

	w := serve(r, http.MethodPost, "/api/v1/checkout", `{"lines":[],"payment_mode":"UPI"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/checkout", `{"lines":[{"product_id":"P001","quantity":1}],"payment_mode":"UPI"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data dto.CheckoutResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Committed)
}

func TestListSales_DayFilter(t *testing.T) {
	uc := &stubUseCase{}
	r := newRouter(uc)

	w := serve(r, http.MethodGet, "/api/v1/sales?day=2026-10-19&limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, uc.filters)
	assert.Equal(t, 5, uc.filters.Limit)
	assert.Equal(t, 19, uc.filters.From.Day())
	assert.Equal(t, 24*time.Hour, uc.filters.To.Sub(uc.filters.From))

	w = serve(r, http.MethodGet, "/api/v1/sales?day=19-10-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailySummary_DefaultsToToday(t *testing.T) {
	uc := &stubUseCase{}
	h := NewSalesHandler(uc, time.Local, logger.NewNop())
	fixed := time.Date(2026, 10, 19, 21, 0, 0, 0, time.Local)
	h.now = func() time.Time { return fixed }

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))

	w := serve(r, http.MethodGet, "/api/v1/sales/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.day.Equal(fixed))
}
