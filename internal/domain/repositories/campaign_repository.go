package repositories

import (
	"context"

	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
)

// CampaignRepository defines campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entities.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Campaign, error)
	GetByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entities.Campaign, error)
	Update(ctx context.Context, campaign *entities.Campaign) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CampaignStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Campaign, error)
}
