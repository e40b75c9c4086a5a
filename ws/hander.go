package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/models"
	"github.com/protexflow/protexflow-backend/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // geliştirme için, production'da origin kısıtlanmalı
	},
}

// Bildirim rozetini canlı takip eden websocket ucu.
// Token query parametresi ile doğrulanır (tarayıcı ws bağlantısında header gönderemez).
func HandleNotificationWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token eksik"})
		return
	}
	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token geçersiz veya süresi dolmuş"})
		return
	}

	userID := claims.UserID
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade başarısız:", err)
		return
	}

	H.Register(userID, conn)
	defer H.Unregister(userID, conn)

	// Bağlanır bağlanmaz mevcut sayıyı gönder
	db := c.MustGet("db").(*gorm.DB)
	uid, err := uuid.Parse(userID)
	if err == nil {
		var count int64
		db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", uid, false).Count(&count)
		SendBadgeUpdate(userID, count)
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
