package providersapi

import (
	"net/http"

	"bookly-backend/database"
	"bookly-backend/internal/domain/providers"
	"bookly-backend/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type blockSlotRequest struct {
	Slot string `json:"slot" binding:"required"` // ISO timestamp
}

type blockDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

// POST /providers/:username/blocked-slots
func ToggleBlockedSlot(c *gin.Context) {
	var req blockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot"})
		return
	}

	settings, ok := loadSettings(c, c.Param("username"))
	if !ok {
		return
	}

	next, blocked := providers.ToggleBlockedSlot(settings.BlockedSlots, req.Slot)
	settings.BlockedSlots = next

	if err := database.DB.Save(settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	cache.InvalidateProvider(c.Request.Context(), c.Param("username"))
	c.JSON(http.StatusOK, gin.H{"blocked": blocked, "blockedSlots": settings.BlockedSlots})
}

// POST /providers/:username/blocked-dates
func ToggleBlockedDates(c *gin.Context) {
	var req blockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing dates"})
		return
	}

	settings, ok := loadSettings(c, c.Param("username"))
	if !ok {
		return
	}

	for _, d := range req.Dates {
		settings.BlockedDates, _ = providers.ToggleBlockedDate(settings.BlockedDates, d)
	}

	if err := database.DB.Save(settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	cache.InvalidateProvider(c.Request.Context(), c.Param("username"))
	c.JSON(http.StatusOK, gin.H{"blockedDates": settings.BlockedDates})
}

func loadSettings(c *gin.Context, username string) (*providers.Settings, bool) {
	var provider providers.Provider
	err := database.DB.Preload("Settings").First(&provider, "username = ?", username).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load provider"})
		}
		return nil, false
	}
	return &provider.Settings, true
}
