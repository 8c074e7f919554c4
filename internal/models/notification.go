package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationKind is the presentation hint for a notification.
type NotificationKind string

const (
	NotificationKindSuccess NotificationKind = "success"
	NotificationKindInfo    NotificationKind = "info"
	NotificationKindWarning NotificationKind = "warning"
)

// Notification is a message for an owner, e.g. that a goal has been
// reached. Notifications are written fire-and-forget, a failed write is
// logged and never aborts the operation that caused it.
type Notification struct {
	DefaultModel
	Owner   Owner     `json:"-"`
	OwnerID uuid.UUID
	Message string
	Kind    NotificationKind
	Read    bool
}

func (n Notification) Self() string {
	return "Notification"
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Message = strings.TrimSpace(n.Message)

	if n.Kind == "" {
		n.Kind = NotificationKindInfo
	}

	return nil
}
