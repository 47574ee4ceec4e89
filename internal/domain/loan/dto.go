package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transco/backoffice-go/internal/pkg/validator"
)

type RecordPaymentRequest struct {
	LoanID string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LoanID) {
		errs = append(errs, validator.ValidationError{Field: "loan_id", Message: "is required"})
	}
	if !validator.IsPositiveAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Amount       decimal.Decimal `json:"amount"`
	Amortization decimal.Decimal `json:"amortization"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	Remaining    decimal.Decimal `json:"remaining"`
	Status       string          `json:"status"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewLoanResponse(l Loan) LoanResponse {
	return LoanResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		Amount:       l.Amount,
		Amortization: l.Amortization,
		PaidAmount:   l.PaidAmount,
		Remaining:    l.Remaining(),
		Status:       string(l.Status),
		UpdatedAt:    l.UpdatedAt,
	}
}
