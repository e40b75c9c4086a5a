package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/models"
	"github.com/protexflow/protexflow-backend/services"
)

// Üretim takip listesi (admin paneli)
func GetProductionTrackings(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.
		Preload("Order").
		Preload("Sample").
		Preload("Company").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("overall_status = ?", status)
	}

	var list []models.ProductionTracking
	if err := query.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Üretim kayıtları getirilemedi"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Termin kontrolünü elle tetikle. Route admin grubunda olduğundan buraya
// yalnızca ADMIN rolü ulaşır; tarama sayıları yanıt ile döner.
func CheckProductionDeadlines(c *gin.Context) {
	scheduler := c.MustGet("scheduler").(*services.DeadlineScheduler)

	approaching, overdue, err := scheduler.TriggerManualCheck()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":     false,
			"error":       "Termin kontrolü tamamlanamadı",
			"approaching": approaching,
			"overdue":     overdue,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"approaching": approaching,
		"overdue":     overdue,
	})
}
