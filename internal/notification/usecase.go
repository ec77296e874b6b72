package notification

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification/dto"
)

// Dispatcher renders a template and records the simulated delivery.
// Dispatch always returns the recorded entry; it has no failure mode.
type Dispatcher interface {
	Dispatch(ctx context.Context, to string, tmpl Template, vars Variables) *model.NotificationLogEntry
}

type UseCase interface {
	Dispatcher
	ListLog(ctx context.Context, filters *dto.LogFilters) ([]model.NotificationLogEntry, error)
}
