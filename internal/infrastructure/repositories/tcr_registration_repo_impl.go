package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/infrastructure/models"
)

// TCRRegistrationRepository implements submission-history operations
type TCRRegistrationRepository struct {
	db *gorm.DB
}

// NewTCRRegistrationRepository creates a new TCR registration repository
func NewTCRRegistrationRepository(db *gorm.DB) *TCRRegistrationRepository {
	return &TCRRegistrationRepository{db: db}
}

// Create appends a new submission attempt row
func (r *TCRRegistrationRepository) Create(ctx context.Context, reg *entities.TCRRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	m := registrationToModel(reg)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// Update updates an existing submission attempt with the registry outcome
func (r *TCRRegistrationRepository) Update(ctx context.Context, reg *entities.TCRRegistration) error {
	reg.UpdatedAt = time.Now()
	m := registrationToModel(reg)

	result := getDB(ctx, r.db).WithContext(ctx).
		Model(&models.TCRRegistration{}).
		Where("id = ?", reg.ID).
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

// GetByBrandID gets all submission attempts for a brand, newest first
func (r *TCRRegistrationRepository) GetByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entities.TCRRegistration, error) {
	var regModels []models.TCRRegistration
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&regModels).Error
	if err != nil {
		return nil, err
	}
	return registrationsToEntities(regModels), nil
}

// GetByCampaignID gets all submission attempts for a campaign, newest first
func (r *TCRRegistrationRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) ([]*entities.TCRRegistration, error) {
	var regModels []models.TCRRegistration
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("campaign_id = ?", campaignID.String()).
		Order("created_at DESC").
		Find(&regModels).Error
	if err != nil {
		return nil, err
	}
	return registrationsToEntities(regModels), nil
}

func registrationsToEntities(regModels []models.TCRRegistration) []*entities.TCRRegistration {
	regs := make([]*entities.TCRRegistration, 0, len(regModels))
	for i := range regModels {
		regs = append(regs, registrationToEntity(&regModels[i]))
	}
	return regs
}

func registrationToModel(r *entities.TCRRegistration) *models.TCRRegistration {
	return &models.TCRRegistration{
		ID:            r.ID,
		UserID:        r.UserID,
		BrandID:       r.BrandID,
		CampaignID:    r.CampaignID.Ptr(),
		TCRBrandID:    r.TCRBrandID.Ptr(),
		TCRCampaignID: r.TCRCampaignID.Ptr(),
		Status:        string(r.Status),
		TCRResponse:   r.TCRResponse.Ptr(),
		ErrorMessage:  r.ErrorMessage.Ptr(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func registrationToEntity(m *models.TCRRegistration) *entities.TCRRegistration {
	return &entities.TCRRegistration{
		ID:            m.ID,
		UserID:        m.UserID,
		BrandID:       m.BrandID,
		CampaignID:    null.StringFromPtr(m.CampaignID),
		TCRBrandID:    null.StringFromPtr(m.TCRBrandID),
		TCRCampaignID: null.StringFromPtr(m.TCRCampaignID),
		Status:        entities.TCRStatus(m.Status),
		TCRResponse:   null.StringFromPtr(m.TCRResponse),
		ErrorMessage:  null.StringFromPtr(m.ErrorMessage),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
