package response

import (
	"errors"
	"net/http"

	"github.com/facilops/facil-backend-go/internal/domain/auth"
	"github.com/facilops/facil-backend-go/internal/domain/post"
	"github.com/facilops/facil-backend-go/internal/domain/roster"
	"github.com/facilops/facil-backend-go/internal/domain/staff"
	"github.com/facilops/facil-backend-go/internal/domain/user"
	"github.com/facilops/facil-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Service post domain errors
	case errors.Is(err, post.ErrPostNotFound):
		NotFound(w, "Service post not found")
	case errors.Is(err, post.ErrPostNameExists):
		Conflict(w, "A post with this name already exists at the site")
	case errors.Is(err, post.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Roster domain errors
	case errors.Is(err, roster.ErrVacantPost):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrInvalidCycle):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrAnchorRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrReasonRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrMarkingDateRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrScheduleNotFound):
		NotFound(w, "Monthly schedule not found")
	case errors.Is(err, roster.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrRefExists):
		Conflict(w, "External reference already linked to another staff member")
	case errors.Is(err, staff.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
