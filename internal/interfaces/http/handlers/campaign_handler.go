package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/interfaces/http/response"
	"percytext.backend/internal/usecases"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	campaignUsecase *usecases.CampaignUsecase
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignUsecase *usecases.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase}
}

// CreateCampaign creates a campaign under a brand
// POST /api/campaigns
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var input entities.CreateCampaignInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.CreateCampaign(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, campaign)
}

// ListCampaigns returns all campaigns
// GET /api/campaigns
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignUsecase.ListCampaigns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaigns)
}

// GetCampaign returns a single campaign
// GET /api/campaigns/:id
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	campaign, err := h.campaignUsecase.GetCampaign(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaign)
}

// GetCampaignsByUser returns all campaigns owned by a user
// GET /api/campaigns/user/:userId
func (h *CampaignHandler) GetCampaignsByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	campaigns, err := h.campaignUsecase.GetCampaignsByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaigns)
}

// GetCampaignsByBrand returns all campaigns under a brand
// GET /api/campaigns/brand/:brandId
func (h *CampaignHandler) GetCampaignsByBrand(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("brandId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	campaigns, err := h.campaignUsecase.GetCampaignsByBrand(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaigns)
}

// UpdateCampaign updates campaign content
// PUT /api/campaigns/:id
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	var input entities.UpdateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.UpdateCampaign(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaign)
}

// UpdateCampaignStatus changes a campaign's status along legal transitions
// PATCH /api/campaigns/:id/status
func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	var input entities.UpdateCampaignStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.UpdateCampaignStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, campaign)
}

// DeleteCampaign removes a campaign
// DELETE /api/campaigns/:id
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	if err := h.campaignUsecase.DeleteCampaign(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitCampaignToTCR submits a campaign to the campaign registry
// POST /api/campaigns/:id/submit-tcr
func (h *CampaignHandler) SubmitCampaignToTCR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	result, err := h.campaignUsecase.SubmitCampaignToTCR(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetTCRCampaignStatus looks up the campaign's status in the campaign registry
// GET /api/campaigns/:id/tcr-status
func (h *CampaignHandler) GetTCRCampaignStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	result, err := h.campaignUsecase.GetTCRCampaignStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
