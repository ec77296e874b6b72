package dto

import "github.com/fekuna/omnipos-juicebar-service/internal/model"

type LogFilters struct {
	Status     model.NotificationStatus `form:"status"`
	TemplateID string                   `form:"template_id"`
	Limit      int                      `form:"limit"`
}
