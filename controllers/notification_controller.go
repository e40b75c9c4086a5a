package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/models"
	"github.com/protexflow/protexflow-backend/ws"
)

// Bildirim listesi
func GetNotifications(c *gin.Context) {
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))
	db := c.MustGet("db").(*gorm.DB)

	var list []models.Notification
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bildirimler getirilemedi"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Okunmamış bildirim sayısı
func GetUnreadCount(c *gin.Context) {
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))
	db := c.MustGet("db").(*gorm.DB)

	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count)
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// Tek bildirimi okundu işaretle. Bildirim başka bir kullanıcıya aitse
// satır güncellenmez ve ayrım yapılmadan "bulunamadı" döner.
func MarkNotificationAsRead(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz bildirim ID"})
		return
	}

	now := time.Now()
	result := db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bildirim güncellenemedi"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bildirim bulunamadı veya erişim yetkiniz yok"})
		return
	}

	// Rozeti canlı güncelle
	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count)
	ws.SendBadgeUpdate(userID.String(), count)

	c.JSON(http.StatusOK, gin.H{"message": "Bildirim okundu olarak işaretlendi"})
}

// Tüm bildirimleri okundu işaretle, güncellenen sayıyı dön
func MarkAllAsRead(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	now := time.Now()
	result := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bildirimler güncellenemedi"})
		return
	}

	ws.SendBadgeUpdate(userID.String(), 0)

	c.JSON(http.StatusOK, gin.H{
		"message":       "Tüm bildirimler okundu olarak işaretlendi",
		"updated_count": result.RowsAffected,
	})
}

// Tek bildirimi sil (sahiplik kontrolü ile)
func DeleteNotification(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz bildirim ID"})
		return
	}

	var notif models.Notification
	if err := db.First(&notif, "id = ? AND user_id = ?", notifID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bildirim bulunamadı veya erişim yetkiniz yok"})
		return
	}

	if err := db.Delete(&notif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bildirim silinemedi"})
		return
	}

	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count)
	ws.SendBadgeUpdate(userID.String(), count)

	c.JSON(http.StatusOK, gin.H{"message": "Bildirim silindi"})
}

// Okunmuş bildirimleri sil, okunmamışlara dokunma
func DeleteReadNotifications(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	if err := db.Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Okunmuş bildirimler silinemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Okunmuş bildirimler silindi"})
}
