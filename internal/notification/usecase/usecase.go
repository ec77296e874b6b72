package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type notificationUseCase struct {
	repo   notification.Repository
	now    func() time.Time
	logger logger.ZapLogger
}

func NewNotificationUseCase(repo notification.Repository, log logger.ZapLogger) notification.UseCase {
	return &notificationUseCase{
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

func (uc *notificationUseCase) Dispatch(ctx context.Context, to string, tmpl notification.Template, vars notification.Variables) *model.NotificationLogEntry {
	status := model.NotificationSent
	if to == "" {
		status = model.NotificationSkippedNoNumber
	}

	entry := &model.NotificationLogEntry{
		ID:         uuid.New().String(),
		To:         to,
		TemplateID: tmpl.ID,
		Template:   tmpl.Body,
		Message:    tmpl.Render(vars),
		Status:     status,
		CreatedAt:  uc.now(),
	}

	// Delivery is simulated; the log entry is the only side effect.
	if err := uc.repo.Append(ctx, entry); err != nil {
		uc.logger.Error("Failed to record notification",
			zap.String("template_id", tmpl.ID),
			zap.Error(err),
		)
		return entry
	}

	uc.logger.Info("Notification dispatched",
		zap.String("template_id", tmpl.ID),
		zap.String("to", to),
		zap.String("status", string(status)),
	)
	return entry
}

func (uc *notificationUseCase) ListLog(ctx context.Context, filters *dto.LogFilters) ([]model.NotificationLogEntry, error) {
	return uc.repo.FindAll(ctx, filters)
}
