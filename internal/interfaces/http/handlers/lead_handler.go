package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/interfaces/http/response"
	"percytext.backend/internal/usecases"
	"percytext.backend/pkg/utils"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadUsecase *usecases.LeadUsecase
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadUsecase *usecases.LeadUsecase) *LeadHandler {
	return &LeadHandler{leadUsecase: leadUsecase}
}

// CreateLead handles a public contact-form submission
// POST /api/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var input entities.CreateLeadInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lead, err := h.leadUsecase.CreateLead(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, lead)
}

// ListLeads returns leads matching the filters, paginated
// GET /api/leads?status=&priority=&assignedTo=&brandId=&page=&limit=
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var filters entities.LeadFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	leads, meta, err := h.leadUsecase.ListLeads(c.Request.Context(), filters, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": leads,
		"meta": meta,
	})
}

// GetLead returns a single lead
// GET /api/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lead id"))
		return
	}

	lead, err := h.leadUsecase.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// GetLeadByEmail returns the most recent lead for an email address
// GET /api/leads/email/:email
func (h *LeadHandler) GetLeadByEmail(c *gin.Context) {
	lead, err := h.leadUsecase.GetLeadByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// SearchLeads searches leads by name, email or company substring
// GET /api/leads/search/:query
func (h *LeadHandler) SearchLeads(c *gin.Context) {
	leads, err := h.leadUsecase.SearchLeads(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, leads)
}

// GetLeadActivities returns the activity history of a lead
// GET /api/leads/:id/activities
func (h *LeadHandler) GetLeadActivities(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lead id"))
		return
	}

	activities, err := h.leadUsecase.GetLeadActivities(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, activities)
}

// CreateLeadActivity records a new activity for a lead
// POST /api/leads/:id/activities
func (h *LeadHandler) CreateLeadActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lead id"))
		return
	}

	var input entities.CreateLeadActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	input.LeadID = id

	activity, err := h.leadUsecase.CreateLeadActivity(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, activity)
}

// UpdateLeadStatus moves a lead through the sales pipeline
// PATCH /api/leads/:id/status
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lead id"))
		return
	}

	var input entities.UpdateLeadStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lead, err := h.leadUsecase.UpdateLeadStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// UpdateLeadPriority changes a lead's handling priority
// PATCH /api/leads/:id/priority
func (h *LeadHandler) UpdateLeadPriority(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lead id"))
		return
	}

	var input entities.UpdateLeadPriorityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lead, err := h.leadUsecase.UpdateLeadPriority(c.Request.Context(), id, input.Priority)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// AssignLead assigns a lead to a salesperson
// PATCH /api/leads/:id/assign
func (h *LeadHandler) AssignLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid lead id"))
		return
	}

	var input entities.AssignLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lead, err := h.leadUsecase.AssignLead(c.Request.Context(), id, input.AssignedTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}
