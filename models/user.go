package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin           UserRole = "ADMIN"            // Sistem yöneticisi
	RoleCompanyOwner    UserRole = "COMPANY_OWNER"    // Firma sahibi
	RoleCompanyEmployee UserRole = "COMPANY_EMPLOYEE" // Firma çalışanı
	RoleCustomer        UserRole = "CUSTOMER"         // Alıcı (müşteri)
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string     `gorm:"size:150;not null" json:"full_name"`
	Email     string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	Role      UserRole   `gorm:"type:varchar(30);not null;default:'CUSTOMER'" json:"role"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Status    *bool      `gorm:"default:true" json:"status,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Company *Company `json:"company,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
