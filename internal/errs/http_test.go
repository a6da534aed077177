package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusAndDefaultCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("busy", false, nil), http.StatusConflict, "CONFLICT"},
		{"unprocessable", NewUnprocessableEntityError("dup", false, nil), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestConstructors_CustomCode(t *testing.T) {
	code := "CATEGORY_ALREADY_EXISTS"
	err := NewUnprocessableEntityError("Category already exists", true, &code)

	assert.Equal(t, code, err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, "Category already exists", err.Error())
}

func TestWithMessage_DoesNotMutateOriginal(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("Something went wrong while saving")

	assert.Equal(t, "Internal Server Error", base.Message)
	assert.Equal(t, "Something went wrong while saving", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Owner not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("name is required"))

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: name is required", err.Message)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("ok"))
}
