package model

import "time"

type NotificationStatus string

const (
	NotificationSent            NotificationStatus = "SENT"
	NotificationSkippedNoNumber NotificationStatus = "SKIPPED_NO_NUMBER"
)

type NotificationLogEntry struct {
	ID         string             `db:"id" json:"id"`
	To         string             `db:"recipient" json:"to"`
	TemplateID string             `db:"template_id" json:"template_id"`
	Template   string             `db:"template" json:"template"`
	Message    string             `db:"message" json:"message"`
	Status     NotificationStatus `db:"status" json:"status"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
}
