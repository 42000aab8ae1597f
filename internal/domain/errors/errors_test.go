package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	base := errors.New("row missing")
	appErr := NewAppError(http.StatusNotFound, CodeNotFound, "brand not found", base)

	assert.Equal(t, "row missing", appErr.Error())
	assert.ErrorIs(t, appErr, base)

	noWrap := &AppError{Status: 500, Code: CodeInternal, Message: "boom"}
	assert.Equal(t, "boom", noWrap.Error())
	assert.Nil(t, noWrap.Unwrap())
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err      *AppError
		status   int
		code     string
		sentinel error
	}{
		{NotFound("missing"), http.StatusNotFound, CodeNotFound, ErrNotFound},
		{BadRequest("bad"), http.StatusBadRequest, CodeBadRequest, ErrInvalidInput},
		{Unauthorized("nope"), http.StatusUnauthorized, CodeUnauthorized, ErrUnauthorized},
		{Forbidden("no"), http.StatusForbidden, CodeForbidden, ErrForbidden},
		{Conflict("dup"), http.StatusConflict, CodeConflict, ErrAlreadyExists},
	}

	for _, c := range cases {
		assert.Equal(t, c.status, c.err.Status)
		assert.Equal(t, c.code, c.err.Code)
		assert.ErrorIs(t, c.err, c.sentinel)
	}

	internal := InternalError(errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "internal server error", internal.Message)
}

func TestNewError_WrapsSentinel(t *testing.T) {
	err := NewError("cannot transition brand from APPROVED to PENDING", ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
