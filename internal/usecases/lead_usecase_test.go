package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/usecases"
	"percytext.backend/pkg/utils"
)

func validLeadInput() *entities.CreateLeadInput {
	return &entities.CreateLeadInput{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan@reyesroofing.com",
		Company:   "Reyes Roofing",
		Source:    entities.LeadSourceContactForm,
	}
}

func newLeadUsecaseForTest(
	leadRepo *MockLeadRepository,
	activityRepo *MockLeadActivityRepository,
	crmClient *MockCRMClient,
) (*usecases.LeadUsecase, *MockUnitOfWork) {
	uow := new(MockUnitOfWork)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	return usecases.NewLeadUsecase(leadRepo, activityRepo, uow, crmClient), uow
}

func TestLeadUsecase_CreateLead_SyncsToCRM(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	crmClient := new(MockCRMClient)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, crmClient)

	leadID := uuid.New()
	leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Lead")).Return(nil).Run(func(args mock.Arguments) {
		l := args.Get(1).(*entities.Lead)
		l.ID = leadID
		assert.Equal(t, entities.LeadStatusNew, l.Status)
		assert.Equal(t, entities.LeadPriorityMedium, l.Priority)
	}).Once()
	activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.LeadActivity")).Return(nil).Run(func(args mock.Arguments) {
		a := args.Get(1).(*entities.LeadActivity)
		assert.Equal(t, leadID, a.LeadID)
		assert.Equal(t, entities.ActivityContactFormSubmission, a.Type)
		assert.NotNil(t, a.Metadata["formData"])
	}).Once()
	crmClient.On("CreateOrUpdateContact", mock.Anything, mock.AnythingOfType("*entities.Lead")).Return("hs-contact-1", nil).Once()
	leadRepo.On("SetHubspotContactID", mock.Anything, leadID, "hs-contact-1").Return(nil).Once()
	crmClient.On("CreateCompany", mock.Anything, mock.AnythingOfType("*entities.Lead")).Return("hs-company-1", nil).Once()
	leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Lead")).Return(nil).Once()
	crmClient.On("CreateActivity", mock.Anything, "hs-contact-1", mock.AnythingOfType("*entities.LeadActivity")).Return("hs-eng-1", nil).Once()
	activityRepo.On("SetHubspotActivityID", mock.Anything, mock.Anything, "hs-eng-1").Return(nil).Once()
	leadRepo.On("GetByID", mock.Anything, leadID).Return(&entities.Lead{
		ID:       leadID,
		Status:   entities.LeadStatusNew,
		Priority: entities.LeadPriorityMedium,
	}, nil).Once()

	lead, err := uc.CreateLead(context.Background(), validLeadInput())
	require.NoError(t, err)
	assert.Equal(t, leadID, lead.ID)
	leadRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
	crmClient.AssertExpectations(t)
}

func TestLeadUsecase_CreateLead_CRMFailureIsSwallowed(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	crmClient := new(MockCRMClient)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, crmClient)

	leadID := uuid.New()
	leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Lead")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Lead).ID = leadID
	}).Once()
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	crmClient.On("CreateOrUpdateContact", mock.Anything, mock.Anything).Return("", assert.AnError).Once()
	leadRepo.On("GetByID", mock.Anything, leadID).Return(&entities.Lead{
		ID:       leadID,
		Status:   entities.LeadStatusNew,
		Priority: entities.LeadPriorityMedium,
	}, nil).Once()

	lead, err := uc.CreateLead(context.Background(), validLeadInput())
	require.NoError(t, err, "CRM failure must not fail lead creation")
	assert.Equal(t, entities.LeadStatusNew, lead.Status)
	assert.Equal(t, entities.LeadPriorityMedium, lead.Priority)
	leadRepo.AssertNotCalled(t, "SetHubspotContactID", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeadUsecase_CreateLead_ExplicitPriorityKept(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	crmClient := new(MockCRMClient)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, crmClient)

	leadID := uuid.New()
	leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Lead")).Return(nil).Run(func(args mock.Arguments) {
		l := args.Get(1).(*entities.Lead)
		l.ID = leadID
		assert.Equal(t, entities.LeadPriorityUrgent, l.Priority)
	}).Once()
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	crmClient.On("CreateOrUpdateContact", mock.Anything, mock.Anything).Return("", assert.AnError).Once()
	leadRepo.On("GetByID", mock.Anything, leadID).Return(&entities.Lead{ID: leadID}, nil).Once()

	input := validLeadInput()
	input.Priority = entities.LeadPriorityUrgent
	_, err := uc.CreateLead(context.Background(), input)
	require.NoError(t, err)
	leadRepo.AssertExpectations(t)
}

func TestLeadUsecase_CreateLead_RollsBackWhenActivityFails(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	crmClient := new(MockCRMClient)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, crmClient)

	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := uc.CreateLead(context.Background(), validLeadInput())
	require.Error(t, err)
	crmClient.AssertNotCalled(t, "CreateOrUpdateContact", mock.Anything, mock.Anything)
}

func TestLeadUsecase_CreateLeadActivity_PushesToCRMWhenSynced(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	crmClient := new(MockCRMClient)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, crmClient)

	leadID := uuid.New()
	lead := &entities.Lead{ID: leadID}
	lead.HubspotContactID = null.StringFrom("hs-contact-1")
	leadRepo.On("GetByID", context.Background(), leadID).Return(lead, nil).Once()

	activityID := uuid.New()
	activityRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.LeadActivity")).Return(nil).Run(func(args mock.Arguments) {
		a := args.Get(1).(*entities.LeadActivity)
		a.ID = activityID
		assert.Equal(t, entities.ActivityStatusPending, a.Status)
	}).Once()
	crmClient.On("CreateActivity", context.Background(), "hs-contact-1", mock.Anything).Return("hs-eng-2", nil).Once()
	activityRepo.On("SetHubspotActivityID", context.Background(), activityID, "hs-eng-2").Return(nil).Once()
	activityRepo.On("GetByID", context.Background(), activityID).Return(&entities.LeadActivity{ID: activityID}, nil).Once()

	_, err := uc.CreateLeadActivity(context.Background(), &entities.CreateLeadActivityInput{
		LeadID: leadID,
		Type:   entities.ActivityPhoneCall,
		Title:  "Discovery call",
	})
	require.NoError(t, err)
	crmClient.AssertExpectations(t)
}

func TestLeadUsecase_CreateLeadActivity_UnsyncedLeadSkipsCRM(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	crmClient := new(MockCRMClient)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, crmClient)

	leadID := uuid.New()
	leadRepo.On("GetByID", context.Background(), leadID).Return(&entities.Lead{ID: leadID}, nil).Once()

	activityID := uuid.New()
	activityRepo.On("Create", context.Background(), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.LeadActivity).ID = activityID
	}).Once()
	activityRepo.On("GetByID", context.Background(), activityID).Return(&entities.LeadActivity{ID: activityID}, nil).Once()

	_, err := uc.CreateLeadActivity(context.Background(), &entities.CreateLeadActivityInput{
		LeadID: leadID,
		Type:   entities.ActivityOther,
		Title:  "Note",
	})
	require.NoError(t, err)
	crmClient.AssertNotCalled(t, "CreateActivity", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeadUsecase_GetLeadByEmail_MissingIsNilNotError(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	uc, _ := newLeadUsecaseForTest(leadRepo, new(MockLeadActivityRepository), new(MockCRMClient))

	leadRepo.On("GetByEmail", context.Background(), "nobody@mail.com").Return(nil, domainerrors.ErrNotFound).Once()

	lead, err := uc.GetLeadByEmail(context.Background(), "nobody@mail.com")
	require.NoError(t, err)
	assert.Nil(t, lead)

	// other repo failures still propagate
	leadRepo.On("GetByEmail", context.Background(), "down@mail.com").Return(nil, assert.AnError).Once()
	_, err = uc.GetLeadByEmail(context.Background(), "down@mail.com")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLeadUsecase_ListLeads_Pagination(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	uc, _ := newLeadUsecaseForTest(leadRepo, new(MockLeadActivityRepository), new(MockCRMClient))

	filters := entities.LeadFilters{Status: entities.LeadStatusNew}
	leadRepo.On("List", context.Background(), filters, 10, 10).Return([]*entities.Lead{{}, {}}, int64(25), nil).Once()

	leads, meta, err := uc.ListLeads(context.Background(), filters, utils.GetPaginationParams(2, 10))
	require.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
}

func TestLeadUsecase_PipelineUpdates(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	uc, _ := newLeadUsecaseForTest(leadRepo, new(MockLeadActivityRepository), new(MockCRMClient))
	id := uuid.New()

	leadRepo.On("UpdateStatus", context.Background(), id, entities.LeadStatusQualified).Return(nil).Once()
	leadRepo.On("UpdatePriority", context.Background(), id, entities.LeadPriorityHigh).Return(nil).Once()
	leadRepo.On("Assign", context.Background(), id, "sales-1").Return(nil).Once()
	leadRepo.On("GetByID", context.Background(), id).Return(&entities.Lead{ID: id}, nil).Times(3)

	_, err := uc.UpdateLeadStatus(context.Background(), id, entities.LeadStatusQualified)
	require.NoError(t, err)
	_, err = uc.UpdateLeadPriority(context.Background(), id, entities.LeadPriorityHigh)
	require.NoError(t, err)
	_, err = uc.AssignLead(context.Background(), id, "sales-1")
	require.NoError(t, err)
	leadRepo.AssertExpectations(t)
}

func TestLeadUsecase_GetLeadActivities_UnknownLead(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	activityRepo := new(MockLeadActivityRepository)
	uc, _ := newLeadUsecaseForTest(leadRepo, activityRepo, new(MockCRMClient))
	id := uuid.New()

	leadRepo.On("GetByID", context.Background(), id).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.GetLeadActivities(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	activityRepo.AssertNotCalled(t, "GetByLeadID", mock.Anything, mock.Anything)
}
