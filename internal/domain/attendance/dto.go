package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transco/backoffice-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`

	ParsedDate time.Time `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = date
	}

	if _, err := ParseStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: err.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	ComputedPay decimal.Decimal `json:"computed_pay"`
	MarkedAt    time.Time       `json:"marked_at"`
}

type MarkAttendanceResponse struct {
	EmployeeID     string              `json:"employee_id"`
	Date           string              `json:"date"`
	RemovedRecords int                 `json:"removed_records"`
	Attendance     *AttendanceResponse `json:"attendance,omitempty"`

	// ToggledOff is true when the request removed the day's status.
	ToggledOff bool `json:"toggled_off"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Date:        r.Date.Format("2006-01-02"),
		Status:      string(r.Status),
		ComputedPay: r.ComputedPay,
		MarkedAt:    r.MarkedAt,
	}
}
