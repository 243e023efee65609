package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
)

// GetNotifications GET /notifications
func GetNotifications(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var notifications []models.Notification
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at desc").Limit(50).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// GetUnreadCount GET /notifications/unread-count
func GetUnreadCount(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var count int64
	database.DB.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count)

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead PUT /notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	notificationID := c.Param("id")

	var notification models.Notification
	if err := database.DB.First(&notification, "id = ?", notificationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	notification.IsRead = true
	database.DB.Save(&notification)

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// MarkAllNotificationsRead PUT /notifications/read-all
func MarkAllNotificationsRead(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	c.JSON(http.StatusOK, gin.H{"message": "All marked as read"})
}

// DeleteNotification DELETE /notifications/:id
func DeleteNotification(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	notificationID := c.Param("id")

	var notification models.Notification
	if err := database.DB.First(&notification, "id = ?", notificationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	database.DB.Delete(&notification)

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
