package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusActive Status = "Active"
	StatusPaid   Status = "Paid"
)

type Loan struct {
	ID         string
	EmployeeID string
	// Amount is the principal.
	Amount decimal.Decimal
	// Amortization is the scheduled deduction per cut-off.
	Amortization decimal.Decimal
	PaidAmount   decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Remaining is the unpaid principal, never negative.
func (l Loan) Remaining() decimal.Decimal {
	remaining := l.Amount.Sub(l.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ApplyPayment records a payment against the loan. The loan becomes Paid once
// PaidAmount reaches Amount; a Paid loan never reverts to Active.
func ApplyPayment(l Loan, amount decimal.Decimal, now time.Time) (Loan, error) {
	if !amount.IsPositive() {
		return l, ErrInvalidPaymentAmount
	}
	if l.Status == StatusPaid {
		return l, ErrLoanAlreadyPaid
	}

	l.PaidAmount = l.PaidAmount.Add(amount)
	if l.PaidAmount.GreaterThanOrEqual(l.Amount) {
		l.Status = StatusPaid
	}
	l.UpdatedAt = now
	return l, nil
}
