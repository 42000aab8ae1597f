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

// BrandHandler handles brand endpoints
type BrandHandler struct {
	brandUsecase *usecases.BrandUsecase
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandUsecase *usecases.BrandUsecase) *BrandHandler {
	return &BrandHandler{brandUsecase: brandUsecase}
}

// CreateBrand creates a brand
// POST /api/brands
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var input entities.CreateBrandInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, brand)
}

// ListBrands returns all brands
// GET /api/brands
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandUsecase.ListBrands(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brands)
}

// GetBrand returns a single brand
// GET /api/brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	brand, err := h.brandUsecase.GetBrand(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brand)
}

// GetBrandsByUser returns all brands owned by a user
// GET /api/brands/user/:userId
func (h *BrandHandler) GetBrandsByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	brands, err := h.brandUsecase.GetBrandsByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brands)
}

// UpdateBrand updates brand details
// PUT /api/brands/:id
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	var input entities.UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.UpdateBrand(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brand)
}

// UpdateBrandStatus changes a brand's status along legal transitions
// PATCH /api/brands/:id/status
func (h *BrandHandler) UpdateBrandStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	var input entities.UpdateBrandStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.UpdateBrandStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brand)
}

// DeleteBrand removes a brand
// DELETE /api/brands/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	if err := h.brandUsecase.DeleteBrand(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitBrandToTCR submits a brand to the campaign registry
// POST /api/brands/:id/submit-tcr
func (h *BrandHandler) SubmitBrandToTCR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	result, err := h.brandUsecase.SubmitBrandToTCR(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// registry rejection is still a completed submission
	response.Success(c, http.StatusOK, result)
}

// GetTCRBrandStatus looks up the brand's status in the campaign registry
// GET /api/brands/:id/tcr-status
func (h *BrandHandler) GetTCRBrandStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	result, err := h.brandUsecase.GetTCRBrandStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetBrandRegistrations returns the brand's registry submission history
// GET /api/brands/:id/registrations
func (h *BrandHandler) GetBrandRegistrations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid brand id"))
		return
	}

	registrations, err := h.brandUsecase.GetBrandRegistrations(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registrations)
}
