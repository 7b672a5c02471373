package notificationsapi

import (
	"net/http"

	"bookly-backend/database"
	"bookly-backend/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// GET /notifications/:recipient
//
// Recipient is a provider username or the literal "admin". The store is
// append-only, so this is the whole read surface.
func ListNotifications(c *gin.Context) {
	recipient := c.Param("recipient")

	var list []notifications.Notification
	if err := database.DB.
		Where("recipient = ?", recipient).
		Order("created_at DESC").
		Limit(100).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": list})
}
