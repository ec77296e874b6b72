package handler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SummarySender sends the daily summary for an arbitrary day.
type SummarySender interface {
	Send(ctx context.Context, day time.Time) (*model.NotificationLogEntry, error)
}

type NotificationHandler struct {
	uc      notification.UseCase
	summary SummarySender
	logger  logger.ZapLogger
	now     func() time.Time
}

// NewNotificationHandler builds the notification routes. The manual summary
// covers today in loc, the same zone the scheduled summary fires in.
func NewNotificationHandler(uc notification.UseCase, summary SummarySender, loc *time.Location, log logger.ZapLogger) *NotificationHandler {
	if loc == nil {
		loc = time.Local
	}
	return &NotificationHandler{
		uc:      uc,
		summary: summary,
		logger:  log,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	notifications.GET("", h.ListLog)
	notifications.POST("/daily-summary", auth.RequireRole(auth.RoleOwner), h.SendDailySummary)
}

func (h *NotificationHandler) ListLog(c *gin.Context) {
	var filters dto.LogFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, err := h.uc.ListLog(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, entries, len(entries))
}

// SendDailySummary runs the 21:00 summary on demand for today.
func (h *NotificationHandler) SendDailySummary(c *gin.Context) {
	entry, err := h.summary.Send(c.Request.Context(), h.now())
	if err != nil {
		h.logger.Error("Failed to send daily summary", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.Created(c, entry)
}
