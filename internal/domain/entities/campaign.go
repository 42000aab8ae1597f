package entities

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle status of a messaging campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusSuspended CampaignStatus = "SUSPENDED"
	CampaignStatusArchived  CampaignStatus = "ARCHIVED"
)

// campaignTransitions enumerates legal direct status edges. ACTIVE and
// SUSPENDED are also written by the TCR submission workflow; PAUSED and
// ARCHIVED are reachable only through the status endpoint.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:     {CampaignStatusActive, CampaignStatusSuspended, CampaignStatusArchived},
	CampaignStatusActive:    {CampaignStatusPaused, CampaignStatusSuspended, CampaignStatusArchived},
	CampaignStatusPaused:    {CampaignStatusActive, CampaignStatusSuspended, CampaignStatusArchived},
	CampaignStatusSuspended: {CampaignStatusDraft, CampaignStatusArchived},
	CampaignStatusArchived:  {},
}

// CanTransitionTo reports whether a direct status change is allowed
func (s CampaignStatus) CanTransitionTo(target CampaignStatus) bool {
	for _, t := range campaignTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Campaign represents a messaging campaign belonging to a brand
type Campaign struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"userId"`
	BrandID       uuid.UUID      `json:"brandId"`
	CampaignName  string         `json:"campaignName"`
	Description   string         `json:"description"`
	CallToAction  string         `json:"callToAction"`
	SampleMessage string         `json:"sampleMessage"`
	OptInMessage  string         `json:"optInMessage"`
	OptOutMessage string         `json:"optOutMessage"`
	HelpMessage   string         `json:"helpMessage"`
	Status        CampaignStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// CreateCampaignInput represents input for creating a campaign. New campaigns
// always start DRAFT.
type CreateCampaignInput struct {
	UserID        uuid.UUID `json:"userId" binding:"required"`
	BrandID       uuid.UUID `json:"brandId" binding:"required"`
	CampaignName  string    `json:"campaignName" binding:"required,max=255"`
	Description   string    `json:"description" binding:"required"`
	CallToAction  string    `json:"callToAction" binding:"required"`
	SampleMessage string    `json:"sampleMessage" binding:"required"`
	OptInMessage  string    `json:"optInMessage" binding:"required"`
	OptOutMessage string    `json:"optOutMessage" binding:"required"`
	HelpMessage   string    `json:"helpMessage" binding:"required"`
}

// UpdateCampaignInput represents input for updating campaign content. Status
// changes go through UpdateCampaignStatusInput.
type UpdateCampaignInput struct {
	CampaignName  *string `json:"campaignName" binding:"omitempty,max=255"`
	Description   *string `json:"description"`
	CallToAction  *string `json:"callToAction"`
	SampleMessage *string `json:"sampleMessage"`
	OptInMessage  *string `json:"optInMessage"`
	OptOutMessage *string `json:"optOutMessage"`
	HelpMessage   *string `json:"helpMessage"`
}

// UpdateCampaignStatusInput represents input for a direct status change
type UpdateCampaignStatusInput struct {
	Status CampaignStatus `json:"status" binding:"required,oneof=DRAFT ACTIVE PAUSED SUSPENDED ARCHIVED"`
}
