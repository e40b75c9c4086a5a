package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyType string

const (
	CompanyTypeManufacturer CompanyType = "MANUFACTURER"
	CompanyTypeBuyer        CompanyType = "BUYER"
)

type Company struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string      `gorm:"size:200;not null" json:"name"`
	Type      CompanyType `gorm:"type:varchar(20);not null;default:'MANUFACTURER'" json:"type"`
	Address   *string     `gorm:"size:500" json:"address,omitempty"`
	Phone     *string     `gorm:"size:30" json:"phone,omitempty"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	Users []User `json:"users,omitempty"`
}

func (co *Company) BeforeCreate(tx *gorm.DB) error {
	if co.ID == uuid.Nil {
		co.ID = uuid.New()
	}
	return nil
}
