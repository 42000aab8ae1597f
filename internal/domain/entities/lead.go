package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LeadSource represents where a lead came from
type LeadSource string

const (
	LeadSourceContactForm   LeadSource = "CONTACT_FORM"
	LeadSourceDemoRequest   LeadSource = "DEMO_REQUEST"
	LeadSourceWebsiteVisit  LeadSource = "WEBSITE_VISIT"
	LeadSourceReferral      LeadSource = "REFERRAL"
	LeadSourceSocialMedia   LeadSource = "SOCIAL_MEDIA"
	LeadSourceEmailCampaign LeadSource = "EMAIL_CAMPAIGN"
	LeadSourceOther         LeadSource = "OTHER"
)

// LeadStatus represents the sales pipeline status of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusQualified LeadStatus = "QUALIFIED"
	LeadStatusConverted LeadStatus = "CONVERTED"
	LeadStatusLost      LeadStatus = "LOST"
)

// LeadPriority represents handling priority
type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "LOW"
	LeadPriorityMedium LeadPriority = "MEDIUM"
	LeadPriorityHigh   LeadPriority = "HIGH"
	LeadPriorityUrgent LeadPriority = "URGENT"
)

// Lead represents a prospect captured from a form
type Lead struct {
	ID               uuid.UUID    `json:"id"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Email            string       `json:"email"`
	Phone            null.String  `json:"phone,omitempty"`
	Company          null.String  `json:"company,omitempty"`
	JobTitle         null.String  `json:"job_title,omitempty"`
	Website          null.String  `json:"website,omitempty"`
	Industry         null.String  `json:"industry,omitempty"`
	CompanySize      null.String  `json:"company_size,omitempty"`
	Message          null.String  `json:"message,omitempty"`
	HowDidYouHear    null.String  `json:"how_did_you_hear,omitempty"`
	Source           LeadSource   `json:"source"`
	Status           LeadStatus   `json:"status"`
	Priority         LeadPriority `json:"priority"`
	BrandID          null.String  `json:"brand_id,omitempty"`
	HubspotContactID null.String  `json:"hubspot_contact_id,omitempty"`
	HubspotCompanyID null.String  `json:"hubspot_company_id,omitempty"`
	Notes            null.String  `json:"notes,omitempty"`
	AssignedTo       null.String  `json:"assigned_to,omitempty"`
	LastContactDate  null.Time    `json:"last_contact_date,omitempty"`
	NextFollowUpDate null.Time    `json:"next_follow_up_date,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// CreateLeadInput represents a contact-form submission. Status and priority
// are not accepted directly: status is forced to NEW and priority defaults
// to MEDIUM.
type CreateLeadInput struct {
	FirstName     string       `json:"first_name" binding:"required,max=100"`
	LastName      string       `json:"last_name" binding:"required,max=100"`
	Email         string       `json:"email" binding:"required,email"`
	Phone         string       `json:"phone"`
	Company       string       `json:"company"`
	JobTitle      string       `json:"job_title"`
	Website       string       `json:"website"`
	Industry      string       `json:"industry"`
	CompanySize   string       `json:"company_size"`
	Message       string       `json:"message"`
	HowDidYouHear string       `json:"how_did_you_hear"`
	Source        LeadSource   `json:"source" binding:"required,oneof=CONTACT_FORM DEMO_REQUEST WEBSITE_VISIT REFERRAL SOCIAL_MEDIA EMAIL_CAMPAIGN OTHER"`
	BrandID       string       `json:"brand_id"`
	Priority      LeadPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// LeadFilters narrows lead listings
type LeadFilters struct {
	Status     LeadStatus   `form:"status" binding:"omitempty,oneof=NEW CONTACTED QUALIFIED CONVERTED LOST"`
	Priority   LeadPriority `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedTo string       `form:"assignedTo"`
	BrandID    string       `form:"brandId"`
}

// UpdateLeadStatusInput represents input for a lead status change
type UpdateLeadStatusInput struct {
	Status LeadStatus `json:"status" binding:"required,oneof=NEW CONTACTED QUALIFIED CONVERTED LOST"`
}

// UpdateLeadPriorityInput represents input for a lead priority change
type UpdateLeadPriorityInput struct {
	Priority LeadPriority `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH URGENT"`
}

// AssignLeadInput represents input for assigning a lead to a user
type AssignLeadInput struct {
	AssignedTo string `json:"assigned_to" binding:"required"`
}
