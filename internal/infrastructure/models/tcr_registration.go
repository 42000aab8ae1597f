package models

import (
	"time"

	"github.com/google/uuid"
)

type TCRRegistration struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	BrandID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CampaignID    *string   `gorm:"type:varchar(100)"`
	TCRBrandID    *string   `gorm:"column:tcr_brand_id;type:varchar(100)"`
	TCRCampaignID *string   `gorm:"column:tcr_campaign_id;type:varchar(100)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	TCRResponse   *string   `gorm:"column:tcr_response;type:text"`
	ErrorMessage  *string   `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default pluralization
func (TCRRegistration) TableName() string {
	return "tcr_registrations"
}
