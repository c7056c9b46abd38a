package controllers

import (
	"net/http"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/gin-gonic/gin"
)

type statusCount struct {
	Status string `gorm:"column:status" json:"status"`
	Count  int64  `gorm:"column:count" json:"count"`
}

// GetDashboardStats returns counts by BRFQ status, supplier status and the
// overall quote volume.
func GetDashboardStats(c *gin.Context) {
	var brfqCounts []statusCount
	if err := config.DB.Model(&models.BRFQ{}).
		Select("status, COUNT(*) AS count").
		Where("delete_at IS NULL").
		Group("status").
		Scan(&brfqCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch BRFQ stats"})
		return
	}

	var supplierCounts []statusCount
	if err := config.DB.Model(&models.Supplier{}).
		Select("status, COUNT(*) AS count").
		Where("delete_at IS NULL").
		Group("status").
		Scan(&supplierCounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch supplier stats"})
		return
	}

	var quoteCount int64
	if err := config.DB.Model(&models.Quote{}).
		Where("delete_at IS NULL").
		Count(&quoteCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch quote stats"})
		return
	}

	var pendingModifications int64
	if err := config.DB.Model(&models.ModificationRequest{}).
		Where("status = ?", models.ModificationStatusPending).
		Count(&pendingModifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch modification stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"brfqs_by_status":       brfqCounts,
			"suppliers_by_status":   supplierCounts,
			"quotes_total":          quoteCount,
			"pending_modifications": pendingModifications,
		},
	})
}
