package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            uuid.UUID `gorm:"type:uuid;index;not null"`
	DisplayName       string    `gorm:"type:varchar(255);not null"`
	CompanyName       string    `gorm:"type:varchar(255);not null"`
	EIN               string    `gorm:"column:ein;type:varchar(50);not null"`
	EntityType        string    `gorm:"type:varchar(50);not null"`
	Vertical          string    `gorm:"type:varchar(50);not null"`
	Phone             string    `gorm:"type:varchar(50);not null"`
	Email             string    `gorm:"type:varchar(255);not null"`
	Country           string    `gorm:"type:varchar(10);not null"`
	Website           *string   `gorm:"type:varchar(255)"`
	Street            string    `gorm:"type:varchar(255);not null"`
	City              string    `gorm:"type:varchar(100);not null"`
	State             string    `gorm:"type:varchar(100);not null"`
	PostalCode        string    `gorm:"type:varchar(20);not null"`
	StockSymbol       *string   `gorm:"type:varchar(20)"`
	StockExchange     *string   `gorm:"type:varchar(50)"`
	IPAddress         *string   `gorm:"column:ip_address;type:varchar(50)"`
	AltBusinessID     *string   `gorm:"column:alt_business_id;type:varchar(100)"`
	AltBusinessIDType *string   `gorm:"column:alt_business_id_type;type:varchar(50)"`
	Status            string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
