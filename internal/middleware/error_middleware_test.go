package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/eltecal/backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"invalid email", apperrors.ErrInvalidEmail, http.StatusBadRequest},
		{"unsupported export format", apperrors.ErrUnsupportedExportFormat, http.StatusBadRequest},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"semester name taken", apperrors.ErrSemesterAlreadyExists, http.StatusConflict},
		{"user missing", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"semester missing", apperrors.ErrSemesterNotFound, http.StatusNotFound},
		{"course missing", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"notification missing", apperrors.ErrNotificationNotFound, http.StatusNotFound},
		{"missing column", apperrors.ErrMissingRequiredColumn, http.StatusUnprocessableEntity},
		{"empty workbook", apperrors.ErrEmptyWorkbook, http.StatusUnprocessableEntity},
		{"wrong file type", apperrors.ErrUnsupportedFileType, http.StatusUnsupportedMediaType},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrSemesterNotFound, "semester 42 not found")

	w := handleError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "semester 42 not found")
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	w := handleError(t, apperrors.NewValidationError("weekday must be between 1 and 7"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "weekday must be between 1 and 7")
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	w := handleError(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
