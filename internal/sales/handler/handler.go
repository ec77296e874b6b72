package handler

import (
	"strconv"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/response"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SalesHandler struct {
	uc     sales.UseCase
	logger logger.ZapLogger
	loc    *time.Location
	now    func() time.Time
}

// NewSalesHandler builds the sales routes. Day parameters and the summary
// default are calendar days in loc; nil means time.Local.
func NewSalesHandler(uc sales.UseCase, loc *time.Location, log logger.ZapLogger) *SalesHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SalesHandler{
		uc:     uc,
		logger: log,
		loc:    loc,
		now:    func() time.Time { return time.Now().In(loc) },
	}
}

func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	s := rg.Group("/sales")
	s.POST("", h.CommitSale)
	s.GET("", h.ListSales)
	s.GET("/summary", h.DailySummary)

	rg.POST("/checkout", h.Checkout)
}

func (h *SalesHandler) CommitSale(c *gin.Context) {
	var req dto.CommitSaleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sale, err := h.uc.CommitSale(c.Request.Context(), &req)
	if err != nil {
		h.logger.Info("Sale rejected", zap.String("product_id", req.ProductID), zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.Created(c, sale)
}

func (h *SalesHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.uc.Checkout(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, res)
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	filters := &dto.SaleFilters{ProductID: c.Query("product_id")}

	if raw := c.Query("day"); raw != "" {
		day, err := time.ParseInLocation(time.DateOnly, raw, h.loc)
		if err != nil {
			response.BadRequest(c, "day must be YYYY-MM-DD")
			return
		}
		filters.From = day
		filters.To = day.AddDate(0, 0, 1)
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		filters.Limit = limit
	}

	list, err := h.uc.ListSales(c.Request.Context(), filters)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, list, len(list))
}

func (h *SalesHandler) DailySummary(c *gin.Context) {
	day := h.now()
	if raw := c.Query("day"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, h.loc)
		if err != nil {
			response.BadRequest(c, "day must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	summary, err := h.uc.DailySummary(c.Request.Context(), day)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, summary)
}
