package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/domain/repositories"
	"percytext.backend/internal/infrastructure/crm"
	"percytext.backend/pkg/logger"
	"percytext.backend/pkg/utils"
)

// LeadUsecase handles lead intake, pipeline management and best-effort CRM
// sync
type LeadUsecase struct {
	leadRepo     repositories.LeadRepository
	activityRepo repositories.LeadActivityRepository
	uow          repositories.UnitOfWork
	crm          crm.Client
}

// NewLeadUsecase creates a new lead usecase
func NewLeadUsecase(
	leadRepo repositories.LeadRepository,
	activityRepo repositories.LeadActivityRepository,
	uow repositories.UnitOfWork,
	crmClient crm.Client,
) *LeadUsecase {
	return &LeadUsecase{
		leadRepo:     leadRepo,
		activityRepo: activityRepo,
		uow:          uow,
		crm:          crmClient,
	}
}

// CreateLead records a contact-form submission. The lead and its intake
// activity are written atomically; CRM sync happens afterwards and its
// failure never fails the request.
func (u *LeadUsecase) CreateLead(ctx context.Context, input *entities.CreateLeadInput) (*entities.Lead, error) {
	lead := &entities.Lead{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Source:    input.Source,
		Status:    entities.LeadStatusNew,
		Priority:  entities.LeadPriorityMedium,
	}
	if input.Priority != "" {
		lead.Priority = input.Priority
	}
	setOptional(&lead.Phone, input.Phone)
	setOptional(&lead.Company, input.Company)
	setOptional(&lead.JobTitle, input.JobTitle)
	setOptional(&lead.Website, input.Website)
	setOptional(&lead.Industry, input.Industry)
	setOptional(&lead.CompanySize, input.CompanySize)
	setOptional(&lead.Message, input.Message)
	setOptional(&lead.HowDidYouHear, input.HowDidYouHear)
	setOptional(&lead.BrandID, input.BrandID)

	activity := &entities.LeadActivity{
		Type:   entities.ActivityContactFormSubmission,
		Status: entities.ActivityStatusCompleted,
		Title:  "Contact form submitted",
		Metadata: map[string]interface{}{
			"formData": input,
		},
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.leadRepo.Create(txCtx, lead); err != nil {
			return err
		}
		activity.LeadID = lead.ID
		return u.activityRepo.Create(txCtx, activity)
	})
	if err != nil {
		return nil, err
	}

	u.syncLeadToCRM(ctx, lead, activity)

	return u.leadRepo.GetByID(ctx, lead.ID)
}

// CreateLeadActivity records an interaction with a lead and pushes it to the
// CRM when the lead has a synced contact
func (u *LeadUsecase) CreateLeadActivity(ctx context.Context, input *entities.CreateLeadActivityInput) (*entities.LeadActivity, error) {
	lead, err := u.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}

	activity := &entities.LeadActivity{
		LeadID:   lead.ID,
		Type:     input.Type,
		Status:   entities.ActivityStatusPending,
		Title:    input.Title,
		Metadata: input.Metadata,
	}
	setOptional(&activity.Description, input.Description)
	setOptional(&activity.Notes, input.Notes)
	setOptional(&activity.AssignedTo, input.AssignedTo)
	if input.ScheduledDate != nil {
		activity.ScheduledDate.SetValid(*input.ScheduledDate)
	}

	if err := u.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	if lead.HubspotContactID.Valid {
		engagementID, err := u.crm.CreateActivity(ctx, lead.HubspotContactID.String, activity)
		if err != nil {
			logger.Warn(ctx, "CRM activity sync failed",
				zap.String("leadId", lead.ID.String()),
				zap.Error(err))
		} else if err := u.activityRepo.SetHubspotActivityID(ctx, activity.ID, engagementID); err != nil {
			logger.Error(ctx, "failed to record CRM engagement id", zap.Error(err))
		}
	}

	return u.activityRepo.GetByID(ctx, activity.ID)
}

// GetLead gets a lead by ID
func (u *LeadUsecase) GetLead(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	return u.leadRepo.GetByID(ctx, id)
}

// GetLeadByEmail gets the most recent lead with the given email. A missing
// lead is not an error: the result is nil.
func (u *LeadUsecase) GetLeadByEmail(ctx context.Context, email string) (*entities.Lead, error) {
	lead, err := u.leadRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return lead, nil
}

// ListLeads lists leads matching the filters with pagination
func (u *LeadUsecase) ListLeads(ctx context.Context, filters entities.LeadFilters, pagination utils.PaginationParams) ([]*entities.Lead, utils.PaginationMeta, error) {
	leads, total, err := u.leadRepo.List(ctx, filters, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return leads, utils.CalculateMeta(total, pagination.Page, pagination.Limit), nil
}

// SearchLeads finds leads whose name, email or company matches the query
func (u *LeadUsecase) SearchLeads(ctx context.Context, query string) ([]*entities.Lead, error) {
	return u.leadRepo.Search(ctx, query)
}

// GetLeadActivities returns the activity history of a lead
func (u *LeadUsecase) GetLeadActivities(ctx context.Context, leadID uuid.UUID) ([]*entities.LeadActivity, error) {
	if _, err := u.leadRepo.GetByID(ctx, leadID); err != nil {
		return nil, err
	}
	return u.activityRepo.GetByLeadID(ctx, leadID)
}

// UpdateLeadStatus updates a lead's pipeline status
func (u *LeadUsecase) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status entities.LeadStatus) (*entities.Lead, error) {
	if err := u.leadRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.leadRepo.GetByID(ctx, id)
}

// UpdateLeadPriority updates a lead's priority
func (u *LeadUsecase) UpdateLeadPriority(ctx context.Context, id uuid.UUID, priority entities.LeadPriority) (*entities.Lead, error) {
	if err := u.leadRepo.UpdatePriority(ctx, id, priority); err != nil {
		return nil, err
	}
	return u.leadRepo.GetByID(ctx, id)
}

// AssignLead assigns a lead to a user
func (u *LeadUsecase) AssignLead(ctx context.Context, id uuid.UUID, assignedTo string) (*entities.Lead, error) {
	if err := u.leadRepo.Assign(ctx, id, assignedTo); err != nil {
		return nil, err
	}
	return u.leadRepo.GetByID(ctx, id)
}

// syncLeadToCRM pushes the lead and its intake activity to the CRM. Every
// failure is logged and swallowed.
func (u *LeadUsecase) syncLeadToCRM(ctx context.Context, lead *entities.Lead, activity *entities.LeadActivity) {
	contactID, err := u.crm.CreateOrUpdateContact(ctx, lead)
	if err != nil {
		logger.Warn(ctx, "CRM contact sync failed",
			zap.String("leadId", lead.ID.String()),
			zap.Error(err))
		return
	}

	if err := u.leadRepo.SetHubspotContactID(ctx, lead.ID, contactID); err != nil {
		logger.Error(ctx, "failed to record CRM contact id", zap.Error(err))
	}
	lead.HubspotContactID.SetValid(contactID)

	if lead.Company.Valid {
		companyID, err := u.crm.CreateCompany(ctx, lead)
		if err != nil {
			logger.Warn(ctx, "CRM company sync failed",
				zap.String("leadId", lead.ID.String()),
				zap.Error(err))
		} else {
			lead.HubspotCompanyID.SetValid(companyID)
			if err := u.leadRepo.Update(ctx, lead); err != nil {
				logger.Error(ctx, "failed to record CRM company id", zap.Error(err))
			}
		}
	}

	engagementID, err := u.crm.CreateActivity(ctx, contactID, activity)
	if err != nil {
		logger.Warn(ctx, "CRM activity sync failed",
			zap.String("leadId", lead.ID.String()),
			zap.Error(err))
		return
	}
	if err := u.activityRepo.SetHubspotActivityID(ctx, activity.ID, engagementID); err != nil {
		logger.Error(ctx, "failed to record CRM engagement id", zap.Error(err))
	}
}
