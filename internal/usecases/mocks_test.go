package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"percytext.backend/internal/domain/entities"
	"percytext.backend/internal/infrastructure/registry"
	redispkg "percytext.backend/pkg/redis"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetBySessionToken(ctx context.Context, token string) (*entities.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*entities.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Brand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Brand), args.Error(1)
}

func (m *MockBrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BrandStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandRepository) List(ctx context.Context) ([]*entities.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Brand), args.Error(1)
}

// Mock CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Campaign, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) GetByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entities.Campaign, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CampaignStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampaignRepository) List(ctx context.Context) ([]*entities.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Campaign), args.Error(1)
}

// Mock LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetByEmail(ctx context.Context, email string) (*entities.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority entities.LeadPriority) error {
	args := m.Called(ctx, id, priority)
	return args.Error(0)
}

func (m *MockLeadRepository) Assign(ctx context.Context, id uuid.UUID, assignedTo string) error {
	args := m.Called(ctx, id, assignedTo)
	return args.Error(0)
}

func (m *MockLeadRepository) SetHubspotContactID(ctx context.Context, id uuid.UUID, contactID string) error {
	args := m.Called(ctx, id, contactID)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, filters entities.LeadFilters, limit, offset int) ([]*entities.Lead, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) Search(ctx context.Context, query string) ([]*entities.Lead, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lead), args.Error(1)
}

// Mock LeadActivityRepository
type MockLeadActivityRepository struct {
	mock.Mock
}

func (m *MockLeadActivityRepository) Create(ctx context.Context, activity *entities.LeadActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockLeadActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LeadActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LeadActivity), args.Error(1)
}

func (m *MockLeadActivityRepository) GetByLeadID(ctx context.Context, leadID uuid.UUID) ([]*entities.LeadActivity, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeadActivity), args.Error(1)
}

func (m *MockLeadActivityRepository) SetHubspotActivityID(ctx context.Context, id uuid.UUID, activityID string) error {
	args := m.Called(ctx, id, activityID)
	return args.Error(0)
}

// Mock TCRRegistrationRepository
type MockTCRRegistrationRepository struct {
	mock.Mock
}

func (m *MockTCRRegistrationRepository) Create(ctx context.Context, reg *entities.TCRRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockTCRRegistrationRepository) Update(ctx context.Context, reg *entities.TCRRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockTCRRegistrationRepository) GetByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entities.TCRRegistration, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TCRRegistration), args.Error(1)
}

func (m *MockTCRRegistrationRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) ([]*entities.TCRRegistration, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TCRRegistration), args.Error(1)
}

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock registry client
type MockRegistryClient struct {
	mock.Mock
}

func (m *MockRegistryClient) SubmitBrand(ctx context.Context, brand *entities.Brand) *registry.Result {
	args := m.Called(ctx, brand)
	return args.Get(0).(*registry.Result)
}

func (m *MockRegistryClient) SubmitCampaign(ctx context.Context, campaign *entities.Campaign, tcrBrandID string) *registry.Result {
	args := m.Called(ctx, campaign, tcrBrandID)
	return args.Get(0).(*registry.Result)
}

func (m *MockRegistryClient) GetBrandStatus(ctx context.Context, tcrBrandID string) *registry.Result {
	args := m.Called(ctx, tcrBrandID)
	return args.Get(0).(*registry.Result)
}

func (m *MockRegistryClient) GetCampaignStatus(ctx context.Context, tcrCampaignID string) *registry.Result {
	args := m.Called(ctx, tcrCampaignID)
	return args.Get(0).(*registry.Result)
}

// Mock CRM client
type MockCRMClient struct {
	mock.Mock
}

func (m *MockCRMClient) CreateOrUpdateContact(ctx context.Context, lead *entities.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

func (m *MockCRMClient) CreateCompany(ctx context.Context, lead *entities.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

func (m *MockCRMClient) CreateActivity(ctx context.Context, contactID string, activity *entities.LeadActivity) (string, error) {
	args := m.Called(ctx, contactID, activity)
	return args.String(0), args.Error(1)
}

// Mock SessionManager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) CreateSession(ctx context.Context, sessionID string, data *redispkg.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionManager) GetSession(ctx context.Context, sessionID string) (*redispkg.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redispkg.SessionData), args.Error(1)
}

func (m *MockSessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
