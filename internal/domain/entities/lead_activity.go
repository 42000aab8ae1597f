package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LeadActivityType represents the kind of interaction recorded for a lead
type LeadActivityType string

const (
	ActivityContactFormSubmission LeadActivityType = "CONTACT_FORM_SUBMISSION"
	ActivityDemoRequest           LeadActivityType = "DEMO_REQUEST"
	ActivityEmailOpen             LeadActivityType = "EMAIL_OPEN"
	ActivityEmailClick            LeadActivityType = "EMAIL_CLICK"
	ActivityWebsiteVisit          LeadActivityType = "WEBSITE_VISIT"
	ActivityPhoneCall             LeadActivityType = "PHONE_CALL"
	ActivityMeetingScheduled      LeadActivityType = "MEETING_SCHEDULED"
	ActivityMeetingCompleted      LeadActivityType = "MEETING_COMPLETED"
	ActivityProposalSent          LeadActivityType = "PROPOSAL_SENT"
	ActivityProposalViewed        LeadActivityType = "PROPOSAL_VIEWED"
	ActivityConversion            LeadActivityType = "CONVERSION"
	ActivityOther                 LeadActivityType = "OTHER"
)

// LeadActivityStatus represents the state of an activity
type LeadActivityStatus string

const (
	ActivityStatusPending    LeadActivityStatus = "PENDING"
	ActivityStatusInProgress LeadActivityStatus = "IN_PROGRESS"
	ActivityStatusCompleted  LeadActivityStatus = "COMPLETED"
	ActivityStatusFailed     LeadActivityStatus = "FAILED"
	ActivityStatusCancelled  LeadActivityStatus = "CANCELLED"
)

// LeadActivity represents a recorded interaction with a lead
type LeadActivity struct {
	ID                uuid.UUID              `json:"id"`
	LeadID            uuid.UUID              `json:"lead_id"`
	Type              LeadActivityType       `json:"type"`
	Status            LeadActivityStatus     `json:"status"`
	Title             string                 `json:"title"`
	Description       null.String            `json:"description,omitempty"`
	Outcome           null.String            `json:"outcome,omitempty"`
	Notes             null.String            `json:"notes,omitempty"`
	AssignedTo        null.String            `json:"assigned_to,omitempty"`
	ScheduledDate     null.Time              `json:"scheduled_date,omitempty"`
	CompletedDate     null.Time              `json:"completed_date,omitempty"`
	Duration          null.String            `json:"duration,omitempty"`
	HubspotActivityID null.String            `json:"hubspot_activity_id,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// CreateLeadActivityInput represents input for recording a lead activity.
// New activities always start PENDING.
type CreateLeadActivityInput struct {
	LeadID        uuid.UUID              `json:"lead_id"`
	Type          LeadActivityType       `json:"type" binding:"required"`
	Title         string                 `json:"title" binding:"required,max=255"`
	Description   string                 `json:"description"`
	Notes         string                 `json:"notes"`
	AssignedTo    string                 `json:"assigned_to"`
	ScheduledDate *time.Time             `json:"scheduled_date"`
	Metadata      map[string]interface{} `json:"metadata"`
}
