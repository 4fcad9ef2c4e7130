// file: services/notification_service.go
package services

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// Keep the newest rows only; the table is a mailbox, not an archive.
const notificationRetentionCap = 5000

// persistNotification writes the durable row on the caller's transaction, so
// the event record commits or rolls back together with the event that caused
// it. Delivery happens separately, after commit.
func persistNotification(tx *gorm.DB, recipientID uint32, ntype models.NotificationType, priority models.NotificationPriority, title, message, relatedData string) (models.Notification, error) {
	n := models.Notification{
		RecipientID: recipientID,
		Type:        ntype,
		Priority:    priority,
		Title:       title,
		Message:     message,
		RelatedData: relatedData,
	}
	err := tx.Create(&n).Error
	return n, err
}

// tripGuardianIDs resolves the guardians with at least one non-cancelled
// participant on the trip, on the caller's transaction.
func tripGuardianIDs(tx *gorm.DB, tripID uint32) ([]uint32, error) {
	var ids []uint32
	err := tx.Model(&models.Participant{}).
		Where("trip_id = ? AND status <> ?", tripID, models.ParticipantStatusCancelled).
		Distinct().
		Pluck("guardian_id", &ids).Error
	return ids, err
}

// notifyGuardians persists one row per guardian and returns them for
// post-commit delivery.
func notifyGuardians(tx *gorm.DB, guardianIDs []uint32, trip *models.Trip, ntype models.NotificationType, priority models.NotificationPriority, title, message string) ([]models.Notification, error) {
	related := fmt.Sprintf(`{"trip_id":%d}`, trip.ID)
	rows := make([]models.Notification, 0, len(guardianIDs))
	for _, gid := range guardianIDs {
		n, err := persistNotification(tx, gid, ntype, priority, title, message, related)
		if err != nil {
			return nil, err
		}
		rows = append(rows, n)
	}
	return rows, nil
}

// deliverNotifications pushes committed rows over the realtime and email
// channels and prunes the mailbox afterwards. Each delivery path fails
// independently: a dead redis or SMTP server never reaches the caller.
func deliverNotifications(rows []models.Notification) {
	for i := range rows {
		pushRealtime(&rows[i])
		sendEmailFallback(&rows[i])
	}
	if len(rows) > 0 {
		sweepOldNotifications()
	}
}

// pushRealtime publishes the serialized notification on the recipient's
// channel. Clients join "user:{id}:notifications" and filter on related_data.
func pushRealtime(n *models.Notification) {
	if database.RDB == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	channel := fmt.Sprintf("user:%d:notifications", n.RecipientID)
	if err := database.RDB.Publish(database.Ctx, channel, payload).Err(); err != nil {
		log.Printf("realtime push to %s failed: %v", channel, err)
	}
}

func sendEmailFallback(n *models.Notification) {
	var recipient models.User
	if err := database.DB.First(&recipient, n.RecipientID).Error; err != nil {
		return
	}
	if err := utils.SendEmail(recipient.Email, n.Title, n.Message); err != nil {
		log.Printf("email fallback to %s failed: %v", recipient.Email, err)
	}
}

func sweepOldNotifications() {
	var count int64
	if err := database.DB.Model(&models.Notification{}).Count(&count).Error; err != nil {
		return
	}
	if count <= notificationRetentionCap {
		return
	}
	// The derived-table wrap keeps the statement valid on MySQL, which will
	// not delete from a table it selects from directly.
	res := database.DB.Exec(
		`DELETE FROM edusafaris_notification WHERE id IN (
			SELECT id FROM (
				SELECT id FROM edusafaris_notification ORDER BY created_at ASC, id ASC LIMIT ?
			) AS stale
		)`, count-notificationRetentionCap)
	if res.Error != nil {
		log.Printf("notification sweep failed: %v", res.Error)
	}
}
