package notification

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/notification/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type Repository interface {
	Append(ctx context.Context, entry *model.NotificationLogEntry) error
	FindAll(ctx context.Context, filters *dto.LogFilters) ([]model.NotificationLogEntry, error)
}
