package repositories

import (
	"context"

	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
)

// TCRRegistrationRepository defines submission-history operations
type TCRRegistrationRepository interface {
	Create(ctx context.Context, reg *entities.TCRRegistration) error
	Update(ctx context.Context, reg *entities.TCRRegistration) error
	GetByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entities.TCRRegistration, error)
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) ([]*entities.TCRRegistration, error)
}
