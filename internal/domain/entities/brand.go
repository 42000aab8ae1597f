package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EntityType represents the legal form of a registered business
type EntityType string

const (
	EntityTypePrivateProfit  EntityType = "PRIVATE_PROFIT"
	EntityTypePublicProfit   EntityType = "PUBLIC_PROFIT"
	EntityTypeNonProfit      EntityType = "NON_PROFIT"
	EntityTypeGovernment     EntityType = "GOVERNMENT"
	EntityTypeSoleProprietor EntityType = "SOLE_PROPRIETOR"
)

// Vertical represents the industry vertical of a brand
type Vertical string

const (
	VerticalAgriculture          Vertical = "AGRICULTURE"
	VerticalAutomotive           Vertical = "AUTOMOTIVE"
	VerticalBankingFinance       Vertical = "BANKING_FINANCE"
	VerticalConsumerGoods        Vertical = "CONSUMER_GOODS"
	VerticalEducation            Vertical = "EDUCATION"
	VerticalEmergency            Vertical = "EMERGENCY"
	VerticalEnergyUtilities      Vertical = "ENERGY_UTILITIES"
	VerticalEntertainment        Vertical = "ENTERTAINMENT"
	VerticalFoodBeverage         Vertical = "FOOD_BEVERAGE"
	VerticalGovernment           Vertical = "GOVERNMENT"
	VerticalHealthcare           Vertical = "HEALTHCARE"
	VerticalHospitalityTravel    Vertical = "HOSPITALITY_TRAVEL"
	VerticalInsurance            Vertical = "INSURANCE"
	VerticalInternet             Vertical = "INTERNET"
	VerticalLegal                Vertical = "LEGAL"
	VerticalManufacturing        Vertical = "MANUFACTURING"
	VerticalMedia                Vertical = "MEDIA"
	VerticalNonProfit            Vertical = "NON_PROFIT"
	VerticalPharmaceuticals      Vertical = "PHARMACEUTICALS"
	VerticalPolitical            Vertical = "POLITICAL"
	VerticalProfessionalServices Vertical = "PROFESSIONAL_SERVICES"
	VerticalPublicSafety         Vertical = "PUBLIC_SAFETY"
	VerticalRealEstate           Vertical = "REAL_ESTATE"
	VerticalReligion             Vertical = "RELIGION"
	VerticalRetail               Vertical = "RETAIL"
	VerticalTechnology           Vertical = "TECHNOLOGY"
	VerticalTelecommunications   Vertical = "TELECOMMUNICATIONS"
	VerticalTransportation       Vertical = "TRANSPORTATION"
)

// BrandStatus represents the 10DLC registration status of a brand
type BrandStatus string

const (
	BrandStatusPending   BrandStatus = "PENDING"
	BrandStatusApproved  BrandStatus = "APPROVED"
	BrandStatusRejected  BrandStatus = "REJECTED"
	BrandStatusSuspended BrandStatus = "SUSPENDED"
)

// brandTransitions enumerates the legal direct status edges. APPROVED and
// REJECTED are normally written only by the TCR submission workflow; the
// direct edges from PENDING exist for operator overrides via the status
// endpoint.
var brandTransitions = map[BrandStatus][]BrandStatus{
	BrandStatusPending:   {BrandStatusApproved, BrandStatusRejected, BrandStatusSuspended},
	BrandStatusApproved:  {BrandStatusSuspended},
	BrandStatusRejected:  {BrandStatusPending, BrandStatusSuspended},
	BrandStatusSuspended: {BrandStatusPending},
}

// CanTransitionTo reports whether a direct status change is allowed
func (s BrandStatus) CanTransitionTo(target BrandStatus) bool {
	for _, t := range brandTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Brand represents a business entity registered for messaging compliance
type Brand struct {
	ID                uuid.UUID   `json:"id"`
	UserID            uuid.UUID   `json:"userId"`
	DisplayName       string      `json:"displayName"`
	CompanyName       string      `json:"companyName"`
	EIN               string      `json:"ein"`
	EntityType        EntityType  `json:"entityType"`
	Vertical          Vertical    `json:"vertical"`
	Phone             string      `json:"phone"`
	Email             string      `json:"email"`
	Country           string      `json:"country"`
	Website           null.String `json:"website,omitempty"`
	Street            string      `json:"street"`
	City              string      `json:"city"`
	State             string      `json:"state"`
	PostalCode        string      `json:"postalCode"`
	StockSymbol       null.String `json:"stockSymbol,omitempty"`
	StockExchange     null.String `json:"stockExchange,omitempty"`
	IPAddress         null.String `json:"ipAddress,omitempty"`
	AltBusinessID     null.String `json:"altBusinessId,omitempty"`
	AltBusinessIDType null.String `json:"altBusinessIdType,omitempty"`
	Status            BrandStatus `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// CreateBrandInput represents input for creating a brand. Status is not
// accepted from the caller: new brands always start PENDING.
type CreateBrandInput struct {
	UserID            uuid.UUID `json:"userId" binding:"required"`
	DisplayName       string    `json:"displayName" binding:"required,max=255"`
	CompanyName       string    `json:"companyName" binding:"required,max=255"`
	EIN               string    `json:"ein" binding:"required"`
	EntityType        string    `json:"entityType" binding:"required,oneof=PRIVATE_PROFIT PUBLIC_PROFIT NON_PROFIT GOVERNMENT SOLE_PROPRIETOR"`
	Vertical          string    `json:"vertical" binding:"required"`
	Phone             string    `json:"phone" binding:"required"`
	Email             string    `json:"email" binding:"required,email"`
	Country           string    `json:"country" binding:"required"`
	Website           string    `json:"website" binding:"omitempty,url"`
	Street            string    `json:"street" binding:"required"`
	City              string    `json:"city" binding:"required"`
	State             string    `json:"state" binding:"required"`
	PostalCode        string    `json:"postalCode" binding:"required"`
	StockSymbol       string    `json:"stockSymbol"`
	StockExchange     string    `json:"stockExchange"`
	IPAddress         string    `json:"ipAddress"`
	AltBusinessID     string    `json:"altBusinessId"`
	AltBusinessIDType string    `json:"altBusinessIdType"`
}

// UpdateBrandInput represents input for updating brand details. Status is
// deliberately absent: status changes go through UpdateBrandStatusInput.
type UpdateBrandInput struct {
	DisplayName       *string `json:"displayName" binding:"omitempty,max=255"`
	CompanyName       *string `json:"companyName" binding:"omitempty,max=255"`
	EIN               *string `json:"ein"`
	EntityType        *string `json:"entityType" binding:"omitempty,oneof=PRIVATE_PROFIT PUBLIC_PROFIT NON_PROFIT GOVERNMENT SOLE_PROPRIETOR"`
	Vertical          *string `json:"vertical"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Country           *string `json:"country"`
	Website           *string `json:"website" binding:"omitempty,url"`
	Street            *string `json:"street"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	PostalCode        *string `json:"postalCode"`
	StockSymbol       *string `json:"stockSymbol"`
	StockExchange     *string `json:"stockExchange"`
	IPAddress         *string `json:"ipAddress"`
	AltBusinessID     *string `json:"altBusinessId"`
	AltBusinessIDType *string `json:"altBusinessIdType"`
}

// UpdateBrandStatusInput represents input for a direct status change
type UpdateBrandStatusInput struct {
	Status BrandStatus `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED SUSPENDED"`
}
