package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// for every error coming back from the service layer.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email format")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password format")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrSemesterAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Semester with this name already exists")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrSemesterNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Semester not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrImportNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Import not found")
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Notification not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrMissingRequiredColumn):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeMissingColumn, "Required column missing from spreadsheet")
	case errors.Is(err, apperrors.ErrEmptyWorkbook):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeImportFailed, "Workbook contains no usable sheet")
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		respond(http.StatusUnsupportedMediaType, dto.ErrorCodeUnsupportedFileType, "Unsupported file type")
	case errors.Is(err, apperrors.ErrUnsupportedExportFormat):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unsupported export format")
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	default:
		message = ""
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}
