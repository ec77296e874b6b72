package handler

import (
	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/forecast"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ForecastHandler struct {
	uc     forecast.UseCase
	logger logger.ZapLogger
}

func NewForecastHandler(uc forecast.UseCase, log logger.ZapLogger) *ForecastHandler {
	return &ForecastHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ForecastHandler) RegisterRoutes(rg *gin.RouterGroup) {
	predictions := rg.Group("/predictions")
	predictions.GET("", h.ListPredictions)
	predictions.GET("/signal", h.GetSignal)
	predictions.PUT("/signal", auth.RequireRole(auth.RoleOwner), h.SetSignal)
}

type setSignalRequest struct {
	Intensity *float64 `json:"intensity" binding:"required"`
}

func (h *ForecastHandler) ListPredictions(c *gin.Context) {
	list := h.uc.Current(c.Request.Context())
	response.SuccessWithTotal(c, list, len(list))
}

func (h *ForecastHandler) GetSignal(c *gin.Context) {
	response.Success(c, h.uc.Signal())
}

func (h *ForecastHandler) SetSignal(c *gin.Context) {
	var req setSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	list, err := h.uc.SetSignal(c.Request.Context(), forecast.Signal{Intensity: *req.Intensity})
	if err != nil {
		h.logger.Error("failed to refresh forecast", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, list, len(list))
}
