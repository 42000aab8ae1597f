package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/infrastructure/models"
)

// BrandRepository implements brand data operations
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a new brand
func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	now := time.Now()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	m := brandToModel(brand)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a brand by ID
func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := getDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return brandToEntity(&m), nil
}

// GetByUserID gets all brands belonging to a user
func (r *BrandRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Brand, error) {
	var brandModels []models.Brand
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&brandModels).Error
	if err != nil {
		return nil, err
	}
	return brandsToEntities(brandModels), nil
}

// Update updates brand details
func (r *BrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	brand.UpdatedAt = time.Now()
	m := brandToModel(brand)

	result := getDB(ctx, r.db).WithContext(ctx).
		Model(&models.Brand{}).
		Where("id = ?", brand.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a brand's registration status
func (r *BrandRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BrandStatus) error {
	result := getDB(ctx, r.db).WithContext(ctx).Model(&models.Brand{}).Where("id = ?", id).Updates(map[string]interface{}{
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

// Delete hard-deletes a brand
func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := getDB(ctx, r.db).WithContext(ctx).Delete(&models.Brand{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all brands
func (r *BrandRepository) List(ctx context.Context) ([]*entities.Brand, error) {
	var brandModels []models.Brand
	if err := getDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&brandModels).Error; err != nil {
		return nil, err
	}
	return brandsToEntities(brandModels), nil
}

func brandsToEntities(brandModels []models.Brand) []*entities.Brand {
	brands := make([]*entities.Brand, 0, len(brandModels))
	for i := range brandModels {
		brands = append(brands, brandToEntity(&brandModels[i]))
	}
	return brands
}

func brandToModel(b *entities.Brand) *models.Brand {
	return &models.Brand{
		ID:                b.ID,
		UserID:            b.UserID,
		DisplayName:       b.DisplayName,
		CompanyName:       b.CompanyName,
		EIN:               b.EIN,
		EntityType:        string(b.EntityType),
		Vertical:          string(b.Vertical),
		Phone:             b.Phone,
		Email:             b.Email,
		Country:           b.Country,
		Website:           b.Website.Ptr(),
		Street:            b.Street,
		City:              b.City,
		State:             b.State,
		PostalCode:        b.PostalCode,
		StockSymbol:       b.StockSymbol.Ptr(),
		StockExchange:     b.StockExchange.Ptr(),
		IPAddress:         b.IPAddress.Ptr(),
		AltBusinessID:     b.AltBusinessID.Ptr(),
		AltBusinessIDType: b.AltBusinessIDType.Ptr(),
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func brandToEntity(m *models.Brand) *entities.Brand {
	return &entities.Brand{
		ID:                m.ID,
		UserID:            m.UserID,
		DisplayName:       m.DisplayName,
		CompanyName:       m.CompanyName,
		EIN:               m.EIN,
		EntityType:        entities.EntityType(m.EntityType),
		Vertical:          entities.Vertical(m.Vertical),
		Phone:             m.Phone,
		Email:             m.Email,
		Country:           m.Country,
		Website:           null.StringFromPtr(m.Website),
		Street:            m.Street,
		City:              m.City,
		State:             m.State,
		PostalCode:        m.PostalCode,
		StockSymbol:       null.StringFromPtr(m.StockSymbol),
		StockExchange:     null.StringFromPtr(m.StockExchange),
		IPAddress:         null.StringFromPtr(m.IPAddress),
		AltBusinessID:     null.StringFromPtr(m.AltBusinessID),
		AltBusinessIDType: null.StringFromPtr(m.AltBusinessIDType),
		Status:            entities.BrandStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
