// file: models/notification.go
package models

import (
	"time"
)

type NotificationType string
type NotificationPriority string

const (
	NotificationTypeTripPublished      NotificationType = "trip_published"
	NotificationTypeTripCancelled      NotificationType = "trip_cancelled"
	NotificationTypeTripStarted        NotificationType = "trip_started"
	NotificationTypeTripCompleted      NotificationType = "trip_completed"
	NotificationTypeRegistration       NotificationType = "registration"
	NotificationTypeParticipantUpdated NotificationType = "participant_updated"
	NotificationTypePaymentReceived    NotificationType = "payment_received"

	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

type Notification struct {
	ID          uint64               `gorm:"primarykey" json:"id"`
	RecipientID uint32               `gorm:"not null;index" json:"recipient_id"`
	Type        NotificationType     `gorm:"size:50;not null" json:"type"`
	Priority    NotificationPriority `gorm:"size:30;not null;default:'normal'" json:"priority"`
	Title       string               `gorm:"size:100;not null" json:"title"`
	Message     string               `gorm:"type:text" json:"message"`
	RelatedData string               `gorm:"type:text" json:"related_data,omitempty"` // JSON, e.g. {"trip_id":1}
	IsRead      bool                 `gorm:"default:0;index" json:"is_read"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (Notification) TableName() string {
	return "edusafaris_notification"
}
