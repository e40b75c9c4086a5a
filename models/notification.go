package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationOrder      NotificationType = "ORDER"
	NotificationSample     NotificationType = "SAMPLE"
	NotificationMessage    NotificationType = "MESSAGE"
	NotificationProduction NotificationType = "PRODUCTION"
	NotificationQuality    NotificationType = "QUALITY"
	NotificationSystem     NotificationType = "SYSTEM"
)

type Notification struct {
	ID      uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"` // alıcı
	Type    NotificationType `gorm:"type:varchar(20);not null;index" json:"type"`
	Title   string           `gorm:"size:255;not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`

	Link                 *string    `gorm:"size:500" json:"link,omitempty"`
	OrderID              *uuid.UUID `gorm:"type:uuid" json:"order_id,omitempty"`
	SampleID             *uuid.UUID `gorm:"type:uuid" json:"sample_id,omitempty"`
	ProductionTrackingID *uuid.UUID `gorm:"type:uuid;index" json:"production_tracking_id,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
