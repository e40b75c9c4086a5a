package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/models"
)

// Üretim durumunu Excel olarak dışa aktar (admin)
func ExportProductionReport(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var list []models.ProductionTracking
	err := db.
		Preload("Order").
		Preload("Sample").
		Preload("Company").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Üretim kayıtları getirilemedi"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Uretim"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Tür", "Numara", "Firma", "Durum", "Aşama", "Tahmini Bitiş", "Gecikme (gün)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	now := time.Now()
	for row, p := range list {
		label, number := "-", "-"
		if p.Order != nil {
			label, number = "Sipariş", p.Order.OrderNumber
		} else if p.Sample != nil {
			label, number = "Numune", p.Sample.SampleNumber
		}

		companyName := ""
		if p.Company != nil {
			companyName = p.Company.Name
		}

		estimated := ""
		daysOverdue := 0
		if p.EstimatedEndDate != nil {
			estimated = p.EstimatedEndDate.Format("02.01.2006")
			if p.EstimatedEndDate.Before(now) && p.OverallStatus == models.ProductionInProgress {
				daysOverdue = int(now.Sub(*p.EstimatedEndDate).Hours() / 24)
			}
		}

		values := []interface{}{label, number, companyName, string(p.OverallStatus), p.CurrentStage, estimated, daysOverdue}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := slug.Make(fmt.Sprintf("uretim-raporu-%s", now.Format("2006-01-02"))) + ".xlsx"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rapor oluşturulamadı"})
	}
}
