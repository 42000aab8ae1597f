package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	SessionToken *string   `gorm:"type:varchar(255)"`
	Status       string    `gorm:"type:varchar(50);not null;default:'pending_verification'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
