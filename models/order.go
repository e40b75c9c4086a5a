package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string     `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	// Üretici henüz atanmamış siparişlerde boş kalabilir
	ManufactureID *uuid.UUID `gorm:"type:uuid;index" json:"manufacture_id,omitempty"`
	CompanyID     *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Status        string     `gorm:"size:50;not null;default:'PENDING'" json:"status"`
	Quantity      int        `gorm:"not null;default:0" json:"quantity"`
	Note          *string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Customer     *User `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Manufacturer *User `gorm:"foreignKey:ManufactureID" json:"manufacturer,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
