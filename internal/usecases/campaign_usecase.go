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

// CampaignUsecase handles campaign business logic and the registry
// submission workflow
type CampaignUsecase struct {
	campaignRepo repositories.CampaignRepository
	brandRepo    repositories.BrandRepository
	tcrRepo      repositories.TCRRegistrationRepository
	registry     registry.Client
}

// NewCampaignUsecase creates a new campaign usecase
func NewCampaignUsecase(
	campaignRepo repositories.CampaignRepository,
	brandRepo repositories.BrandRepository,
	tcrRepo repositories.TCRRegistrationRepository,
	registryClient registry.Client,
) *CampaignUsecase {
	return &CampaignUsecase{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
		tcrRepo:      tcrRepo,
		registry:     registryClient,
	}
}

// CreateCampaign creates a campaign under a brand. The initial status is
// always DRAFT regardless of input.
func (u *CampaignUsecase) CreateCampaign(ctx context.Context, input *entities.CreateCampaignInput) (*entities.Campaign, error) {
	if _, err := u.brandRepo.GetByID(ctx, input.BrandID); err != nil {
		return nil, err
	}

	campaign := &entities.Campaign{
		UserID:        input.UserID,
		BrandID:       input.BrandID,
		CampaignName:  input.CampaignName,
		Description:   input.Description,
		CallToAction:  input.CallToAction,
		SampleMessage: input.SampleMessage,
		OptInMessage:  input.OptInMessage,
		OptOutMessage: input.OptOutMessage,
		HelpMessage:   input.HelpMessage,
		Status:        entities.CampaignStatusDraft,
	}
	if err := u.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetCampaign gets a campaign by ID
func (u *CampaignUsecase) GetCampaign(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	return u.campaignRepo.GetByID(ctx, id)
}

// GetCampaignsByUser gets all campaigns belonging to a user
func (u *CampaignUsecase) GetCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Campaign, error) {
	return u.campaignRepo.GetByUserID(ctx, userID)
}

// GetCampaignsByBrand gets all campaigns under a brand
func (u *CampaignUsecase) GetCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Campaign, error) {
	return u.campaignRepo.GetByBrandID(ctx, brandID)
}

// ListCampaigns lists all campaigns
func (u *CampaignUsecase) ListCampaigns(ctx context.Context) ([]*entities.Campaign, error) {
	return u.campaignRepo.List(ctx)
}

// UpdateCampaign applies a partial update to campaign content. Status is
// never touched here.
func (u *CampaignUsecase) UpdateCampaign(ctx context.Context, id uuid.UUID, input *entities.UpdateCampaignInput) (*entities.Campaign, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&campaign.CampaignName, input.CampaignName)
	applyString(&campaign.Description, input.Description)
	applyString(&campaign.CallToAction, input.CallToAction)
	applyString(&campaign.SampleMessage, input.SampleMessage)
	applyString(&campaign.OptInMessage, input.OptInMessage)
	applyString(&campaign.OptOutMessage, input.OptOutMessage)
	applyString(&campaign.HelpMessage, input.HelpMessage)

	if err := u.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return u.campaignRepo.GetByID(ctx, id)
}

// UpdateCampaignStatus applies a direct status change, enforcing the
// campaign status state machine
func (u *CampaignUsecase) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entities.CampaignStatus) (*entities.Campaign, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if campaign.Status != status && !campaign.Status.CanTransitionTo(status) {
		return nil, domainerrors.NewError(
			"cannot transition campaign from "+string(campaign.Status)+" to "+string(status),
			domainerrors.ErrInvalidTransition,
		)
	}

	if err := u.campaignRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.campaignRepo.GetByID(ctx, id)
}

// DeleteCampaign removes a campaign
func (u *CampaignUsecase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	return u.campaignRepo.Delete(ctx, id)
}

// SubmitCampaignToTCR submits a campaign for registry approval under its
// brand's registry id. The campaign status converges to ACTIVE on success
// and SUSPENDED on any failure, including transport failures.
func (u *CampaignUsecase) SubmitCampaignToTCR(ctx context.Context, id uuid.UUID) (*registry.Result, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tcrBrandID, err := u.registeredBrandID(ctx, campaign.BrandID)
	if err != nil {
		return nil, err
	}

	reg := &entities.TCRRegistration{
		UserID:  campaign.UserID,
		BrandID: campaign.BrandID,
		Status:  entities.TCRStatusSubmitted,
	}
	reg.CampaignID.SetValid(campaign.ID.String())
	reg.TCRBrandID.SetValid(tcrBrandID)
	if err := u.tcrRepo.Create(ctx, reg); err != nil {
		return nil, err
	}

	result := u.registry.SubmitCampaign(ctx, campaign, tcrBrandID)

	if raw, err := json.Marshal(result); err == nil {
		reg.TCRResponse.SetValid(string(raw))
	}

	if result.Success {
		reg.Status = entities.TCRStatusApproved
		if tcrCampaignID, ok := result.Data["campaignId"].(string); ok {
			reg.TCRCampaignID.SetValid(tcrCampaignID)
		}
		if err := u.campaignRepo.UpdateStatus(ctx, id, entities.CampaignStatusActive); err != nil {
			return nil, err
		}
	} else {
		reg.Status = entities.TCRStatusSuspended
		reg.ErrorMessage.SetValid(result.Error)
		logger.Warn(ctx, "campaign submission rejected",
			zap.String("campaignId", id.String()),
			zap.String("error", result.Error))
		if err := u.campaignRepo.UpdateStatus(ctx, id, entities.CampaignStatusSuspended); err != nil {
			return nil, err
		}
	}

	if err := u.tcrRepo.Update(ctx, reg); err != nil {
		logger.Error(ctx, "failed to record submission outcome", zap.Error(err))
	}

	return result, nil
}

// GetTCRCampaignStatus looks up the registry-side status of a submitted
// campaign
func (u *CampaignUsecase) GetTCRCampaignStatus(ctx context.Context, id uuid.UUID) (*registry.Result, error) {
	history, err := u.tcrRepo.GetByCampaignID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, reg := range history {
		if reg.TCRCampaignID.Valid {
			return u.registry.GetCampaignStatus(ctx, reg.TCRCampaignID.String), nil
		}
	}
	return nil, domainerrors.NotFound("campaign has not been registered with TCR")
}

// registeredBrandID finds the registry id from the brand's most recent
// successful registration
func (u *CampaignUsecase) registeredBrandID(ctx context.Context, brandID uuid.UUID) (string, error) {
	history, err := u.tcrRepo.GetByBrandID(ctx, brandID)
	if err != nil {
		return "", err
	}
	for _, reg := range history {
		if reg.TCRBrandID.Valid && reg.CampaignID.IsZero() {
			return reg.TCRBrandID.String, nil
		}
	}
	return "", domainerrors.BadRequest("brand must be registered with TCR before submitting campaigns")
}
