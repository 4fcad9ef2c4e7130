// file: services/notification_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

func TestSweepKeepsRetentionCap(t *testing.T) {
	setupTestDB(t)

	const extra = 25
	base := time.Now().Add(-30 * 24 * time.Hour)
	rows := make([]models.Notification, 0, notificationRetentionCap+extra)
	for i := 0; i < notificationRetentionCap+extra; i++ {
		rows = append(rows, models.Notification{
			RecipientID: 1,
			Type:        models.NotificationTypeRegistration,
			Priority:    models.NotificationPriorityNormal,
			Title:       "New registration",
			Message:     "seed",
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		})
	}
	require.NoError(t, database.DB.CreateInBatches(rows, 500).Error)

	sweepOldNotifications()

	var count int64
	require.NoError(t, database.DB.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, notificationRetentionCap, count)

	// The oldest rows are the ones that go.
	var survivors int64
	require.NoError(t, database.DB.Model(&models.Notification{}).
		Where("id <= ?", extra).Count(&survivors).Error)
	assert.Zero(t, survivors)

	var oldest models.Notification
	require.NoError(t, database.DB.Order("id ASC").First(&oldest).Error)
	assert.EqualValues(t, extra+1, oldest.ID)
}

func TestSweepLeavesSmallTablesAlone(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, database.DB.Create(&models.Notification{
		RecipientID: 1,
		Type:        models.NotificationTypeRegistration,
		Priority:    models.NotificationPriorityNormal,
		Title:       "New registration",
	}).Error)

	sweepOldNotifications()

	var count int64
	require.NoError(t, database.DB.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
