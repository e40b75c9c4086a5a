package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sample struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SampleNumber  string     `gorm:"size:50;uniqueIndex;not null" json:"sample_number"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	ManufactureID *uuid.UUID `gorm:"type:uuid;index" json:"manufacture_id,omitempty"`
	CompanyID     *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Status        string     `gorm:"size:50;not null;default:'REQUESTED'" json:"status"`
	Note          *string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Customer     *User `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Manufacturer *User `gorm:"foreignKey:ManufactureID" json:"manufacturer,omitempty"`
}

func (s *Sample) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
