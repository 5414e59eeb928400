package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationTask    NotificationType = "TASK"
)

// RecipientAll addresses a notification to every user instead of a single id.
const RecipientAll = "ALL"

type Notification struct {
	ID          string           `json:"id" gorm:"primaryKey;size:64"`
	SenderID    *string          `json:"sender_id" gorm:"size:64;index"`
	RecipientID string           `json:"recipient_id" gorm:"not null;size:64;index"` // user id or RecipientAll
	Title       string           `json:"title" gorm:"not null;size:200"`
	Message     string           `json:"message" gorm:"type:text"`
	Date        time.Time        `json:"date"`
	Read        bool             `json:"read" gorm:"not null;default:false"`
	Type        NotificationType `json:"type" gorm:"not null;size:10;default:INFO"`

	// Optional structured payload carried along with published events
	Data datatypes.JSON `json:"data,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// IsValidNotificationType reports whether the type is a known value.
func IsValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationSuccess, NotificationTask:
		return true
	}
	return false
}
