package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/infrastructure/models"
)

// CampaignRepository implements campaign data operations
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	m := campaignToModel(campaign)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a campaign by ID
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	var m models.Campaign
	if err := getDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return campaignToEntity(&m), nil
}

// GetByUserID gets all campaigns belonging to a user
func (r *CampaignRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Campaign, error) {
	var campaignModels []models.Campaign
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&campaignModels).Error
	if err != nil {
		return nil, err
	}
	return campaignsToEntities(campaignModels), nil
}

// GetByBrandID gets all campaigns under a brand
func (r *CampaignRepository) GetByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entities.Campaign, error) {
	var campaignModels []models.Campaign
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&campaignModels).Error
	if err != nil {
		return nil, err
	}
	return campaignsToEntities(campaignModels), nil
}

// Update updates campaign content
func (r *CampaignRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	campaign.UpdatedAt = time.Now()
	m := campaignToModel(campaign)

	result := getDB(ctx, r.db).WithContext(ctx).
		Model(&models.Campaign{}).
		Where("id = ?", campaign.ID).
		Select("*").
		Omit("id", "user_id", "brand_id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a campaign's status
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CampaignStatus) error {
	result := getDB(ctx, r.db).WithContext(ctx).Model(&models.Campaign{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a campaign
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := getDB(ctx, r.db).WithContext(ctx).Delete(&models.Campaign{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all campaigns
func (r *CampaignRepository) List(ctx context.Context) ([]*entities.Campaign, error) {
	var campaignModels []models.Campaign
	if err := getDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	return campaignsToEntities(campaignModels), nil
}

func campaignsToEntities(campaignModels []models.Campaign) []*entities.Campaign {
	campaigns := make([]*entities.Campaign, 0, len(campaignModels))
	for i := range campaignModels {
		campaigns = append(campaigns, campaignToEntity(&campaignModels[i]))
	}
	return campaigns
}

func campaignToModel(c *entities.Campaign) *models.Campaign {
	return &models.Campaign{
		ID:            c.ID,
		UserID:        c.UserID,
		BrandID:       c.BrandID,
		CampaignName:  c.CampaignName,
		Description:   c.Description,
		CallToAction:  c.CallToAction,
		SampleMessage: c.SampleMessage,
		OptInMessage:  c.OptInMessage,
		OptOutMessage: c.OptOutMessage,
		HelpMessage:   c.HelpMessage,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func campaignToEntity(m *models.Campaign) *entities.Campaign {
	return &entities.Campaign{
		ID:            m.ID,
		UserID:        m.UserID,
		BrandID:       m.BrandID,
		CampaignName:  m.CampaignName,
		Description:   m.Description,
		CallToAction:  m.CallToAction,
		SampleMessage: m.SampleMessage,
		OptInMessage:  m.OptInMessage,
		OptOutMessage: m.OptOutMessage,
		HelpMessage:   m.HelpMessage,
		Status:        entities.CampaignStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
