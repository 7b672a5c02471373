package plansapi

import (
	"net/http"

	"bookly-backend/database"
	"bookly-backend/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// GET /plans
func ListPlans(c *gin.Context) {
	var list []plans.Plan
	if err := database.DB.Order("price_inr ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, list)
}
