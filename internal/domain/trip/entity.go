package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trip struct {
	ID         string
	DriverID   string
	HelperID   string
	DriverRate decimal.Decimal
	HelperRate decimal.Decimal
	Date       time.Time
	// Status is carried for display; payroll values every dispatched trip.
	Status string
}

// Expense holds the money movements recorded against a trip.
type Expense struct {
	ID           string
	TripID       string
	DriverCA     decimal.Decimal
	HelperCA     decimal.Decimal
	ClientCharge decimal.Decimal
}
