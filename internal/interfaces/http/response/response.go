package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "percytext.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		switch err {
		case domainerrors.ErrNotFound:
			appErr = domainerrors.NotFound("resource not found")
		case domainerrors.ErrAlreadyExists:
			appErr = domainerrors.Conflict("resource already exists")
		case domainerrors.ErrInvalidCredentials:
			appErr = domainerrors.NewAppError(401, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
		case domainerrors.ErrAccountNotActive:
			appErr = domainerrors.Forbidden("account is not active")
		case domainerrors.ErrUnauthorized:
			appErr = domainerrors.Unauthorized("unauthorized")
		case domainerrors.ErrForbidden:
			appErr = domainerrors.Forbidden("forbidden")
		case domainerrors.ErrInvalidInput, domainerrors.ErrBadRequest:
			appErr = domainerrors.BadRequest(err.Error())
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
