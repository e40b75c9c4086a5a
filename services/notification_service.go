package services

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/models"
	"github.com/protexflow/protexflow-backend/ws"
)

// NotificationInput tek bir bildirim kaydının girdisidir.
type NotificationInput struct {
	UserID               uuid.UUID
	Type                 models.NotificationType
	Title                string
	Message              string
	Link                 *string
	OrderID              *uuid.UUID
	SampleID             *uuid.UUID
	ProductionTrackingID *uuid.UUID
}

// CreateNotification bildirim yazmanın tek yoludur. Yazma hatası yutulur ve
// loglanır, nil döner; böylece bir alıcıya yazılamaması diğer alıcıları etkilemez.
func CreateNotification(db *gorm.DB, in NotificationInput) *models.Notification {
	if in.UserID == uuid.Nil {
		log.Println("Bildirim oluşturulamadı: alıcı user_id boş")
		return nil
	}

	n := &models.Notification{
		UserID:               in.UserID,
		Type:                 in.Type,
		Title:                in.Title,
		Message:              in.Message,
		Link:                 in.Link,
		OrderID:              in.OrderID,
		SampleID:             in.SampleID,
		ProductionTrackingID: in.ProductionTrackingID,
	}
	if err := db.Create(n).Error; err != nil {
		log.Println("Bildirim kaydedilemedi:", err)
		return nil
	}

	// Rozet sayısını canlı bağlantılara ilet
	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", in.UserID, false).Count(&count)
	ws.SendBadgeUpdate(in.UserID.String(), count)

	return n
}

// CompanyMemberIDs firmanın sahip ve çalışan kullanıcılarının ID'lerini döner.
func CompanyMemberIDs(db *gorm.DB, companyID uuid.UUID) ([]uuid.UUID, error) {
	var users []models.User
	err := db.
		Where("company_id = ? AND role IN ?", companyID, []models.UserRole{models.RoleCompanyOwner, models.RoleCompanyEmployee}).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// dedupeIDs sıralamayı koruyarak tekrar eden ID'leri eler.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
