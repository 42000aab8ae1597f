package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TCRStatus represents the registry-side status of a submission attempt
type TCRStatus string

const (
	TCRStatusPending   TCRStatus = "PENDING"
	TCRStatusSubmitted TCRStatus = "SUBMITTED"
	TCRStatusApproved  TCRStatus = "APPROVED"
	TCRStatusRejected  TCRStatus = "REJECTED"
	TCRStatusSuspended TCRStatus = "SUSPENDED"
)

// TCRRegistration records one submission attempt to the compliance registry.
// A new row is appended per attempt, so resubmissions keep their history;
// ErrorMessage distinguishes a registry rejection from a transport failure
// even though both map the entity status to REJECTED/SUSPENDED.
type TCRRegistration struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"userId"`
	BrandID       uuid.UUID   `json:"brandId"`
	CampaignID    null.String `json:"campaignId,omitempty"`
	TCRBrandID    null.String `json:"tcrBrandId,omitempty"`
	TCRCampaignID null.String `json:"tcrCampaignId,omitempty"`
	Status        TCRStatus   `json:"status"`
	TCRResponse   null.String `json:"tcrResponse,omitempty"`
	ErrorMessage  null.String `json:"errorMessage,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
