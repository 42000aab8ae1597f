package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
	"percytext.backend/internal/infrastructure/registry"
	"percytext.backend/internal/usecases"
)

func newCampaignTestRouter(campaignRepo *campaignRepoStub, brandRepo *brandRepoStub, tcrRepo *tcrRegRepoStub, reg *registryStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewCampaignUsecase(campaignRepo, brandRepo, tcrRepo, reg)
	h := NewCampaignHandler(uc)

	r := gin.New()
	r.POST("/campaigns", h.CreateCampaign)
	r.GET("/campaigns/:id", h.GetCampaign)
	r.PATCH("/campaigns/:id/status", h.UpdateCampaignStatus)
	r.POST("/campaigns/:id/submit-tcr", h.SubmitCampaignToTCR)
	return r
}

func campaignJSON(userID, brandID uuid.UUID) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"userId":        userID,
		"brandId":       brandID,
		"campaignName":  "Appointment Reminders",
		"description":   "Reminders for scheduled roof inspections",
		"callToAction":  "Text JOIN to 55555",
		"sampleMessage": "Your inspection is tomorrow at 9am. Reply STOP to opt out.",
		"optInMessage":  "You are subscribed to Percy Roofing alerts.",
		"optOutMessage": "You have been unsubscribed.",
		"helpMessage":   "Reply HELP for help or STOP to cancel.",
	})
	return body
}

func TestCampaignHandler_Create_ForcesDraft(t *testing.T) {
	brandRepo := newBrandRepoStub()
	campaignRepo := newCampaignRepoStub()
	r := newCampaignTestRouter(campaignRepo, brandRepo, &tcrRegRepoStub{}, &registryStub{})

	brand := &entities.Brand{UserID: uuid.New(), Status: entities.BrandStatusApproved}
	_ = brandRepo.Create(context.Background(), brand)

	req := httptest.NewRequest(http.MethodPost, "/campaigns", bytes.NewReader(campaignJSON(brand.UserID, brand.ID)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var campaign entities.Campaign
	if err := json.Unmarshal(w.Body.Bytes(), &campaign); err != nil {
		t.Fatalf("unmarshal campaign: %v", err)
	}
	if campaign.Status != entities.CampaignStatusDraft {
		t.Fatalf("expected DRAFT, got %s", campaign.Status)
	}
}

func TestCampaignHandler_Create_UnknownBrand(t *testing.T) {
	r := newCampaignTestRouter(newCampaignRepoStub(), newBrandRepoStub(), &tcrRegRepoStub{}, &registryStub{})

	req := httptest.NewRequest(http.MethodPost, "/campaigns", bytes.NewReader(campaignJSON(uuid.New(), uuid.New())))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCampaignHandler_SubmitToTCR_RequiresRegisteredBrand(t *testing.T) {
	brandRepo := newBrandRepoStub()
	campaignRepo := newCampaignRepoStub()
	r := newCampaignTestRouter(campaignRepo, brandRepo, &tcrRegRepoStub{}, &registryStub{})

	brand := &entities.Brand{UserID: uuid.New(), Status: entities.BrandStatusApproved}
	_ = brandRepo.Create(context.Background(), brand)
	campaign := &entities.Campaign{UserID: brand.UserID, BrandID: brand.ID, Status: entities.CampaignStatusDraft}
	_ = campaignRepo.Create(context.Background(), campaign)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/"+campaign.ID.String()+"/submit-tcr", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when brand is unregistered, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCampaignHandler_SubmitToTCR_ActivatesCampaign(t *testing.T) {
	brandRepo := newBrandRepoStub()
	campaignRepo := newCampaignRepoStub()
	tcrRepo := &tcrRegRepoStub{}
	reg := &registryStub{
		campaignResult: &registry.Result{
			Success: true,
			Message: "Campaign submitted to TCR successfully",
			Data:    map[string]interface{}{"campaignId": "TCR-C-001"},
		},
	}
	r := newCampaignTestRouter(campaignRepo, brandRepo, tcrRepo, reg)

	brand := &entities.Brand{UserID: uuid.New(), Status: entities.BrandStatusApproved}
	_ = brandRepo.Create(context.Background(), brand)

	brandReg := &entities.TCRRegistration{UserID: brand.UserID, BrandID: brand.ID, Status: entities.TCRStatusApproved}
	brandReg.TCRBrandID.SetValid("TCR-B-001")
	_ = tcrRepo.Create(context.Background(), brandReg)

	campaign := &entities.Campaign{UserID: brand.UserID, BrandID: brand.ID, Status: entities.CampaignStatusDraft}
	_ = campaignRepo.Create(context.Background(), campaign)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/"+campaign.ID.String()+"/submit-tcr", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("TCR-C-001")) {
		t.Fatalf("expected registry campaign id in response: %s", w.Body.String())
	}

	updated, _ := campaignRepo.GetByID(context.Background(), campaign.ID)
	if updated.Status != entities.CampaignStatusActive {
		t.Fatalf("expected ACTIVE, got %s", updated.Status)
	}
}

func TestCampaignHandler_UpdateStatus_ArchivedIsTerminal(t *testing.T) {
	campaignRepo := newCampaignRepoStub()
	r := newCampaignTestRouter(campaignRepo, newBrandRepoStub(), &tcrRegRepoStub{}, &registryStub{})

	campaign := &entities.Campaign{UserID: uuid.New(), BrandID: uuid.New(), Status: entities.CampaignStatusArchived}
	_ = campaignRepo.Create(context.Background(), campaign)

	body := []byte(`{"status":"ACTIVE"}`)
	req := httptest.NewRequest(http.MethodPatch, "/campaigns/"+campaign.ID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}
