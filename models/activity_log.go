// file: models/activity_log.go
package models

import (
	"time"
)

// ActivityLog is an append-only audit side channel. Writes are best-effort:
// a failed log write must never fail the operation being logged.
type ActivityLog struct {
	ID         uint64    `gorm:"primarykey"`
	ActorID    uint32    `gorm:"not null;index"`
	Action     string    `gorm:"size:50;not null"`
	EntityType string    `gorm:"size:50;not null"`
	EntityID   uint32    `gorm:"not null"`
	Detail     string    `gorm:"size:255"`
	IPAddress  string    `gorm:"size:45"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (ActivityLog) TableName() string {
	return "edusafaris_activity_log"
}
