package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductionStatus string

const (
	ProductionNotStarted ProductionStatus = "NOT_STARTED"
	ProductionInProgress ProductionStatus = "IN_PROGRESS"
	ProductionCompleted  ProductionStatus = "COMPLETED"
	ProductionCancelled  ProductionStatus = "CANCELLED"
)

// ProductionTracking bir sipariş VEYA bir numune için üretim takibini tutar.
// OrderID ve SampleID alanlarından yalnızca biri dolu olmalıdır.
type ProductionTracking struct {
	ID               uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID          *uuid.UUID       `gorm:"type:uuid;index" json:"order_id,omitempty"`
	SampleID         *uuid.UUID       `gorm:"type:uuid;index" json:"sample_id,omitempty"`
	CompanyID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"company_id"`
	OverallStatus    ProductionStatus `gorm:"type:varchar(20);not null;default:'NOT_STARTED';index" json:"overall_status"`
	CurrentStage     string           `gorm:"size:100" json:"current_stage"`
	EstimatedEndDate *time.Time       `gorm:"index" json:"estimated_end_date,omitempty"`
	StartedAt        *time.Time       `json:"started_at,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Order        *Order                 `json:"order,omitempty"`
	Sample       *Sample                `json:"sample,omitempty"`
	Company      *Company               `json:"company,omitempty"`
	StageUpdates []ProductionStageUpdate `json:"stage_updates,omitempty"`
}

func (p *ProductionTracking) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProductionStageUpdate struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductionTrackingID uuid.UUID `gorm:"type:uuid;not null;index" json:"production_tracking_id"`
	Stage                string    `gorm:"size:100;not null" json:"stage"`
	Note                 *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (su *ProductionStageUpdate) BeforeCreate(tx *gorm.DB) error {
	if su.ID == uuid.Nil {
		su.ID = uuid.New()
	}
	return nil
}
