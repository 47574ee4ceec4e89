package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transco/backoffice-go/internal/domain/loan"
)

type Employee struct {
	ID        string
	FullName  string
	Role      Role
	DailyRate decimal.Decimal
	// Rate is the fixed per-cut-off salary of salaried staff (Admin).
	Rate decimal.Decimal

	// Statutory contributions, collected on month-end cut-offs only
	SSS        decimal.Decimal
	PhilHealth decimal.Decimal
	PagIbig    decimal.Decimal
	MP2        decimal.Decimal

	// Fixed deductions, collected every cut-off
	UniformDeduction decimal.Decimal
	OfficeCA         decimal.Decimal
	SSSLoan          decimal.Decimal
	PagIbigLoan      decimal.Decimal
	OtherDeduction   decimal.Decimal

	Loans []loan.Loan

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role enum
type Role string

const (
	RoleDriver Role = "Driver"
	RoleHelper Role = "Helper"
	RoleAdmin  Role = "Admin"
)

// IsSalaried reports whether the role is paid a fixed rate instead of per trip.
func (r Role) IsSalaried() bool {
	return r == RoleAdmin
}

// FixedDeductions sums the deductions collected every cut-off regardless of
// month-end gating.
func (e Employee) FixedDeductions() decimal.Decimal {
	return e.UniformDeduction.
		Add(e.OfficeCA).
		Add(e.SSSLoan).
		Add(e.PagIbigLoan).
		Add(e.OtherDeduction)
}
