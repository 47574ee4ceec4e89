package response

import (
	"errors"
	"net/http"

	"github.com/transco/backoffice-go/internal/domain/access"
	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/domain/payroll"
	"github.com/transco/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access errors
	case errors.Is(err, access.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, access.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": err.Error()})

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrLoanAlreadyPaid):
		Conflict(w, "Loan is already fully paid")
	case errors.Is(err, loan.ErrInvalidPaymentAmount):
		ValidationError(w, map[string]string{"amount": err.Error()})

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		ValidationError(w, map[string]string{"period": err.Error()})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
