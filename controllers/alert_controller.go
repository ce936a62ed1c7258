package controllers

import (
	"net/http"
	"strconv"

	"github.com/mindkhichdi/diabeticks-sub000/config"
	"github.com/mindkhichdi/diabeticks-sub000/models"

	"github.com/gin-gonic/gin"
)

// GET /user/alerts?limit=N
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
