// file: services/helpers.go
package services

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect has it. SQLite
// (used by the test harness) has no row locks; its single-writer transaction
// model already serializes the check-and-insert.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// countActiveParticipants derives the current participant count from
// non-cancelled rows. It is never stored, so it cannot drift.
func countActiveParticipants(tx *gorm.DB, tripID uint32) (int64, error) {
	var count int64
	err := tx.Model(&models.Participant{}).
		Where("trip_id = ? AND status <> ?", tripID, models.ParticipantStatusCancelled).
		Count(&count).Error
	return count, err
}

// CurrentParticipantCount is the read-path wrapper over the derived count.
func CurrentParticipantCount(tripID uint32) (int64, error) {
	return countActiveParticipants(database.DB, tripID)
}

// LogActivity writes one audit row. Best-effort: failures are logged and
// swallowed so the primary operation is never rolled back by its audit trail.
func LogActivity(actorID uint32, action, entityType string, entityID uint32, detail, ip string) {
	entry := models.ActivityLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		IPAddress:  ip,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("activity log write failed (%s %s/%d): %v", action, entityType, entityID, err)
	}
}
