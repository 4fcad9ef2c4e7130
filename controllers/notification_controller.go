// file: controllers/notification_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// ListNotifications returns the caller's mailbox, newest first.
func ListNotifications(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.DB.Model(&models.Notification{}).Where("recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		db = db.Where("is_read = ?", false)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}
	var notifications []models.Notification
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":         total,
		"page":          page,
		"limit":         limit,
		"notifications": notifications,
	})
}

func GetUnreadCount(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	var count int64
	if err := database.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}
	utils.Success(c, "success", gin.H{"unread": count})
}

// MarkNotificationRead flips is_read on one of the caller's notifications.
func MarkNotificationRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	res := database.DB.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		utils.Error(c, 5000, "Failed to update notification")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, 4004, "Notification not found")
		return
	}
	utils.Success(c, "Notification marked as read", nil)
}

func MarkAllNotificationsRead(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	if err := database.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		utils.Error(c, 5000, "Failed to update notifications")
		return
	}
	utils.Success(c, "All notifications marked as read", nil)
}
