package handler

import (
	"strconv"

	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	owner := auth.RequireRole(auth.RoleOwner)

	items := rg.Group("/inventory")
	items.GET("", h.ListItems)
	items.GET("/low-stock", h.ListLowStock)
	items.GET("/movements", h.ListMovements)
	items.GET("/items/:name", h.GetItem)
	items.PUT("/items/:name", owner, h.SaveItem)
	items.POST("/items/:name/replenish", owner, h.Replenish)
}

type saveItemRequest struct {
	Unit         string          `json:"unit" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
}

type replenishRequest struct {
	AddQuantity    decimal.Decimal  `json:"add_quantity"`
	NewCostPerUnit *decimal.Decimal `json:"new_cost_per_unit"`
	ReferenceID    string           `json:"reference_id"`
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.uc.ListLowStock(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, items, len(items))
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	filters := &dto.MovementFilters{
		ItemName:     c.Query("item"),
		MovementType: model.MovementType(c.Query("type")),
		ReferenceID:  c.Query("reference"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		filters.Limit = limit
	}

	movements, err := h.uc.ListMovements(c.Request.Context(), filters)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, movements, len(movements))
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.uc.GetItem(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, item)
}

func (h *InventoryHandler) SaveItem(c *gin.Context) {
	var req saveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.uc.SaveItem(c.Request.Context(), &dto.SaveItemInput{
		Name:         c.Param("name"),
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		CostPerUnit:  req.CostPerUnit,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, item)
}

func (h *InventoryHandler) Replenish(c *gin.Context) {
	var req replenishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.uc.Replenish(c.Request.Context(), &dto.ReplenishInput{
		ItemName:       c.Param("name"),
		AddQuantity:    req.AddQuantity,
		NewCostPerUnit: req.NewCostPerUnit,
		ReferenceID:    req.ReferenceID,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, item)
}
