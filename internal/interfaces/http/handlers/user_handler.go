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

// UserHandler handles user endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// ListUsers returns all users
// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// GetUser returns a single user
// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// SearchUsers searches users by email or id substring
// GET /api/users/search/:query
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.userUsecase.SearchUsers(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// UpdateUser updates user details
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateUserStatus changes a user's account status
// PATCH /api/users/:id/status
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input entities.UpdateUserStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.UpdateUserStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser removes a user
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.userUsecase.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
