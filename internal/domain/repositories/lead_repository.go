package repositories

import (
	"context"

	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
)

// LeadRepository defines lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error)
	GetByEmail(ctx context.Context, email string) (*entities.Lead, error)
	Update(ctx context.Context, lead *entities.Lead) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LeadStatus) error
	UpdatePriority(ctx context.Context, id uuid.UUID, priority entities.LeadPriority) error
	Assign(ctx context.Context, id uuid.UUID, assignedTo string) error
	SetHubspotContactID(ctx context.Context, id uuid.UUID, contactID string) error
	List(ctx context.Context, filters entities.LeadFilters, limit, offset int) ([]*entities.Lead, int64, error)
	Search(ctx context.Context, query string) ([]*entities.Lead, error)
}

// LeadActivityRepository defines lead activity data operations
type LeadActivityRepository interface {
	Create(ctx context.Context, activity *entities.LeadActivity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LeadActivity, error)
	GetByLeadID(ctx context.Context, leadID uuid.UUID) ([]*entities.LeadActivity, error)
	SetHubspotActivityID(ctx context.Context, id uuid.UUID, activityID string) error
}
