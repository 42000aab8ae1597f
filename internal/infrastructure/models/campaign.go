package models

import (
	"time"

	"github.com/google/uuid"
)

type Campaign struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	BrandID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CampaignName  string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text;not null"`
	CallToAction  string    `gorm:"type:text;not null"`
	SampleMessage string    `gorm:"type:text;not null"`
	OptInMessage  string    `gorm:"type:text;not null"`
	OptOutMessage string    `gorm:"type:text;not null"`
	HelpMessage   string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
