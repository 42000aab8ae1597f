package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/domain/repositories"
	"percytext.backend/internal/infrastructure/registry"
	"percytext.backend/pkg/logger"
)

// BrandUsecase handles brand business logic and the registry submission
// workflow
type BrandUsecase struct {
	brandRepo repositories.BrandRepository
	tcrRepo   repositories.TCRRegistrationRepository
	registry  registry.Client
}

// NewBrandUsecase creates a new brand usecase
func NewBrandUsecase(
	brandRepo repositories.BrandRepository,
	tcrRepo repositories.TCRRegistrationRepository,
	registryClient registry.Client,
) *BrandUsecase {
	return &BrandUsecase{
		brandRepo: brandRepo,
		tcrRepo:   tcrRepo,
		registry:  registryClient,
	}
}

// CreateBrand creates a brand. The initial status is always PENDING
// regardless of input.
func (u *BrandUsecase) CreateBrand(ctx context.Context, input *entities.CreateBrandInput) (*entities.Brand, error) {
	brand := &entities.Brand{
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		CompanyName: input.CompanyName,
		EIN:         input.EIN,
		EntityType:  entities.EntityType(input.EntityType),
		Vertical:    entities.Vertical(input.Vertical),
		Phone:       input.Phone,
		Email:       input.Email,
		Country:     input.Country,
		Street:      input.Street,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
		Status:      entities.BrandStatusPending,
	}
	setOptional(&brand.Website, input.Website)
	setOptional(&brand.StockSymbol, input.StockSymbol)
	setOptional(&brand.StockExchange, input.StockExchange)
	setOptional(&brand.IPAddress, input.IPAddress)
	setOptional(&brand.AltBusinessID, input.AltBusinessID)
	setOptional(&brand.AltBusinessIDType, input.AltBusinessIDType)

	if err := u.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// GetBrand gets a brand by ID
func (u *BrandUsecase) GetBrand(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	return u.brandRepo.GetByID(ctx, id)
}

// GetBrandsByUser gets all brands belonging to a user
func (u *BrandUsecase) GetBrandsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Brand, error) {
	return u.brandRepo.GetByUserID(ctx, userID)
}

// ListBrands lists all brands
func (u *BrandUsecase) ListBrands(ctx context.Context) ([]*entities.Brand, error) {
	return u.brandRepo.List(ctx)
}

// UpdateBrand applies a partial update to brand details. Status is never
// touched here.
func (u *BrandUsecase) UpdateBrand(ctx context.Context, id uuid.UUID, input *entities.UpdateBrandInput) (*entities.Brand, error) {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&brand.DisplayName, input.DisplayName)
	applyString(&brand.CompanyName, input.CompanyName)
	applyString(&brand.EIN, input.EIN)
	if input.EntityType != nil {
		brand.EntityType = entities.EntityType(*input.EntityType)
	}
	if input.Vertical != nil {
		brand.Vertical = entities.Vertical(*input.Vertical)
	}
	applyString(&brand.Phone, input.Phone)
	applyString(&brand.Email, input.Email)
	applyString(&brand.Country, input.Country)
	applyString(&brand.Street, input.Street)
	applyString(&brand.City, input.City)
	applyString(&brand.State, input.State)
	applyString(&brand.PostalCode, input.PostalCode)
	applyNullString(&brand.Website, input.Website)
	applyNullString(&brand.StockSymbol, input.StockSymbol)
	applyNullString(&brand.StockExchange, input.StockExchange)
	applyNullString(&brand.IPAddress, input.IPAddress)
	applyNullString(&brand.AltBusinessID, input.AltBusinessID)
	applyNullString(&brand.AltBusinessIDType, input.AltBusinessIDType)

	if err := u.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return u.brandRepo.GetByID(ctx, id)
}

// UpdateBrandStatus applies a direct status change, enforcing the brand
// status state machine
func (u *BrandUsecase) UpdateBrandStatus(ctx context.Context, id uuid.UUID, status entities.BrandStatus) (*entities.Brand, error) {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if brand.Status != status && !brand.Status.CanTransitionTo(status) {
		return nil, domainerrors.NewError(
			"cannot transition brand from "+string(brand.Status)+" to "+string(status),
			domainerrors.ErrInvalidTransition,
		)
	}

	if err := u.brandRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.brandRepo.GetByID(ctx, id)
}

// DeleteBrand removes a brand
func (u *BrandUsecase) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return u.brandRepo.Delete(ctx, id)
}

// SubmitBrandToTCR submits a brand for registry approval. The brand status
// converges to APPROVED on success and REJECTED on any failure, including
// transport failures; the registration row keeps the distinction.
func (u *BrandUsecase) SubmitBrandToTCR(ctx context.Context, id uuid.UUID) (*registry.Result, error) {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reg := &entities.TCRRegistration{
		UserID:  brand.UserID,
		BrandID: brand.ID,
		Status:  entities.TCRStatusSubmitted,
	}
	if err := u.tcrRepo.Create(ctx, reg); err != nil {
		return nil, err
	}

	result := u.registry.SubmitBrand(ctx, brand)

	if raw, err := json.Marshal(result); err == nil {
		reg.TCRResponse.SetValid(string(raw))
	}

	if result.Success {
		reg.Status = entities.TCRStatusApproved
		if tcrBrandID, ok := result.Data["brandId"].(string); ok {
			reg.TCRBrandID.SetValid(tcrBrandID)
		}
		if err := u.brandRepo.UpdateStatus(ctx, id, entities.BrandStatusApproved); err != nil {
			return nil, err
		}
	} else {
		reg.Status = entities.TCRStatusRejected
		reg.ErrorMessage.SetValid(result.Error)
		logger.Warn(ctx, "brand submission rejected",
			zap.String("brandId", id.String()),
			zap.String("error", result.Error))
		if err := u.brandRepo.UpdateStatus(ctx, id, entities.BrandStatusRejected); err != nil {
			return nil, err
		}
	}

	if err := u.tcrRepo.Update(ctx, reg); err != nil {
		logger.Error(ctx, "failed to record submission outcome", zap.Error(err))
	}

	return result, nil
}

// GetTCRBrandStatus looks up the registry-side status of a submitted brand
func (u *BrandUsecase) GetTCRBrandStatus(ctx context.Context, id uuid.UUID) (*registry.Result, error) {
	history, err := u.tcrRepo.GetByBrandID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, reg := range history {
		if reg.TCRBrandID.Valid {
			return u.registry.GetBrandStatus(ctx, reg.TCRBrandID.String), nil
		}
	}
	return nil, domainerrors.NotFound("brand has not been registered with TCR")
}

// GetBrandRegistrations returns the submission history of a brand
func (u *BrandUsecase) GetBrandRegistrations(ctx context.Context, id uuid.UUID) ([]*entities.TCRRegistration, error) {
	return u.tcrRepo.GetByBrandID(ctx, id)
}
