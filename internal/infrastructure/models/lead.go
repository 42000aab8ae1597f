package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);index;not null"`
	Phone            *string   `gorm:"type:varchar(50)"`
	Company          *string   `gorm:"type:varchar(255)"`
	JobTitle         *string   `gorm:"type:varchar(255)"`
	Website          *string   `gorm:"type:varchar(255)"`
	Industry         *string   `gorm:"type:varchar(100)"`
	CompanySize      *string   `gorm:"type:varchar(50)"`
	Message          *string   `gorm:"type:text"`
	HowDidYouHear    *string   `gorm:"type:varchar(255)"`
	Source           string    `gorm:"type:varchar(50);not null"`
	Status           string    `gorm:"type:varchar(20);not null;default:'NEW'"`
	Priority         string    `gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	BrandID          *string   `gorm:"type:varchar(100)"`
	HubspotContactID *string   `gorm:"type:varchar(100)"`
	HubspotCompanyID *string   `gorm:"type:varchar(100)"`
	Notes            *string   `gorm:"type:text"`
	AssignedTo       *string   `gorm:"type:varchar(100)"`
	LastContactDate  *time.Time
	NextFollowUpDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type LeadActivity struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	LeadID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Type              string    `gorm:"type:varchar(50);not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Description       *string   `gorm:"type:text"`
	Outcome           *string   `gorm:"type:text"`
	Notes             *string   `gorm:"type:text"`
	AssignedTo        *string   `gorm:"type:varchar(100)"`
	ScheduledDate     *time.Time
	CompletedDate     *time.Time
	Duration          *string `gorm:"type:varchar(50)"`
	HubspotActivityID *string `gorm:"type:varchar(100)"`
	Metadata          *string `gorm:"type:text"` // JSON-encoded
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the default pluralization
func (LeadActivity) TableName() string {
	return "lead_activities"
}
