package response

import (
	"errors"
	"net/http"

	"github.com/kelora-hr/kelora-backend-go/internal/domain/attendance"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/auth"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/document"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/employee"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/feedback"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/user"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/oauth"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unrecognized is
// treated as an infrastructure failure and reported without detail.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrNoEmployeeIdentity):
		Forbidden(w, "No employee identity attached to this account")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, oauth.ErrDisabled):
		NotFound(w, "Google sign-in is not configured")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrDayAlreadyClosed):
		Conflict(w, "You have already checked out today")
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		Conflict(w, "A break can only start while working")
	case errors.Is(err, attendance.ErrNotOnBreak):
		Conflict(w, "You are not on a break")
	case errors.Is(err, attendance.ErrTransitionConflict):
		Conflict(w, "Attendance record was modified by another request")
	case errors.Is(err, attendance.ErrUnknownTransition):
		BadRequest(w, "Unknown transition type", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, "File size exceeds the upload limit", nil)
	case errors.Is(err, document.ErrInvalidFileType):
		BadRequest(w, "File type is not allowed", nil)

	// Feedback domain errors
	case errors.Is(err, feedback.ErrRequestNotFound):
		NotFound(w, "Feedback request not found")
	case errors.Is(err, feedback.ErrSelfRequest):
		BadRequest(w, "You cannot request feedback from yourself", nil)
	case errors.Is(err, feedback.ErrNotAddressedPeer):
		Forbidden(w, "This feedback request is not addressed to you")
	case errors.Is(err, feedback.ErrAlreadyAnswered):
		Conflict(w, "Feedback request has already been answered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
