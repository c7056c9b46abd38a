package controllers

import (
	"log"
	"net/http"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var sendMailFunc = config.SendMail

// sendMailSafe dispatches an email in the background; delivery failures are
// logged but never fail the request.
func sendMailSafe(to []string, subject, html string) {
	if len(to) == 0 {
		return
	}
	go func() {
		if err := sendMailFunc(to, subject, html); err != nil {
			log.Printf("mail: failed to send %q to %v: %v", subject, to, err)
		}
	}()
}

// createNotification writes an in-app notification row. Failures are logged
// only; notifications are best-effort side effects.
func createNotification(userID, title, message, notifType string, relatedBRFQID *string) {
	if userID == "" {
		return
	}
	n := models.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		Type:           notifType,
		RelatedBRFQID:  relatedBRFQID,
		CreateAt:       time.Now(),
	}
	if err := config.DB.Create(&n).Error; err != nil {
		log.Printf("notification: failed to create for user %s: %v", userID, err)
	}
}

// GetNotifications lists the current user's notifications, newest first.
func GetNotifications(c *gin.Context) {
	userID, _ := c.Get("userID")

	var items []models.Notification
	if err := config.DB.Where("user_id = ?", userID).
		Order("create_at DESC").
		Limit(100).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": items})
}

// GetNotificationCounter returns the unread notification count.
func GetNotificationCounter(c *gin.Context) {
	userID, _ := c.Get("userID")

	var unread int64
	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "unread": unread})
}

// MarkNotificationRead marks one notification as read.
func MarkNotificationRead(c *gin.Context) {
	userID, _ := c.Get("userID")
	notificationID := c.Param("id")

	now := time.Now()
	res := config.DB.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllNotificationsRead marks every unread notification as read.
func MarkAllNotificationsRead(c *gin.Context) {
	userID, _ := c.Get("userID")

	now := time.Now()
	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "update_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
