package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/interfaces/http/middleware"
	"percytext.backend/internal/interfaces/http/response"
	"percytext.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// SignUp handles user registration
// POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input entities.SignUpInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authUsecase.SignUp(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, auth)
}

// SignIn handles user login
// POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input entities.SignInInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authUsecase.SignIn(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// SignOut destroys the current session
// POST /api/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	// body is optional; a missing session id is a no-op sign-out
	_ = c.ShouldBindJSON(&input)

	if err := h.authUsecase.SignOut(c.Request.Context(), input.SessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Signed out successfully",
	})
}

// ResetPassword starts a password reset flow
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	// same response whether or not the account exists
	response.Success(c, http.StatusOK, gin.H{
		"message": "If the email exists, reset instructions have been sent",
	})
}

// VerifyToken validates the bearer token and returns the user behind it
// GET /api/auth/verify
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	authHeader := c.GetHeader(middleware.AuthorizationHeader)
	if !strings.HasPrefix(authHeader, middleware.BearerPrefix) {
		response.Error(c, domainerrors.Unauthorized("Authorization header is required"))
		return
	}

	token := strings.TrimPrefix(authHeader, middleware.BearerPrefix)
	user, err := h.authUsecase.VerifyToken(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"valid": true,
		"user":  user,
	})
}

// SignInWithGoogle handles the OAuth sign-in route
// POST /api/auth/google
func (h *AuthHandler) SignInWithGoogle(c *gin.Context) {
	auth, err := h.authUsecase.SignInWithGoogle(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}
