package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half-Day"
	StatusAbsent  Status = "Absent"
	StatusRestDay Status = "Rest Day"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusHalfDay, StatusAbsent, StatusRestDay:
		return true
	}
	return false
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.IsValid() {
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Worked reports whether the status counts as a day on the job.
func (s Status) Worked() bool {
	return s == StatusPresent || s == StatusHalfDay
}

type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	// ComputedPay is the day's pay captured at mark time from the daily rate
	// in effect then. It is not recomputed when the rate changes.
	ComputedPay decimal.Decimal
	MarkedAt    time.Time
}

// DailyPay converts one day's status into pay for the given daily rate.
func DailyPay(dailyRate decimal.Decimal, status Status) decimal.Decimal {
	switch status {
	case StatusPresent:
		return dailyRate
	case StatusHalfDay:
		return dailyRate.Div(decimal.NewFromInt(2))
	default:
		return decimal.Zero
	}
}
