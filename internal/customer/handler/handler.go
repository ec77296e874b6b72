package handler

import (
	"strconv"

	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/customer"
	"github.com/fekuna/omnipos-juicebar-service/internal/customer/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.GET("", h.ListCustomers)
	customers.GET("/:id", h.GetCustomer)
	customers.POST("", h.CreateCustomer)
	customers.PUT("/:id", h.UpdateCustomer)
	customers.DELETE("/:id", auth.RequireRole(auth.RoleOwner), h.DeleteCustomer)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var input dto.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cust, err := h.uc.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		h.logger.Warn("failed to create customer", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.Created(c, cust)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cust, err := h.uc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, cust)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	filters := &dto.CustomerFilters{SearchQuery: c.Query("q")}
	if raw := c.Query("has_contact"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "has_contact must be a boolean")
			return
		}
		filters.HasContact = &v
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	customers, total, err := h.uc.ListCustomers(c.Request.Context(), filters)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, customers, total)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var input dto.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	input.ID = c.Param("id")

	cust, err := h.uc.UpdateCustomer(c.Request.Context(), &input)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, cust)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.uc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"id": c.Param("id")})
}
