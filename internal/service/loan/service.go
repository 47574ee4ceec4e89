package loan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/transco/backoffice-go/internal/domain/loan"
)

type LoanServiceImpl struct {
	loanRepo loan.LoanRepository
	now      func() time.Time
}

func NewLoanService(loanRepo loan.LoanRepository) loan.LoanService {
	return &LoanServiceImpl{
		loanRepo: loanRepo,
		now:      time.Now,
	}
}

// RecordPayment applies the payment under the repository's row lock so
// concurrent payments against one loan do not lose updates.
func (s *LoanServiceImpl) RecordPayment(ctx context.Context, req loan.RecordPaymentRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	nowUTC := s.now().UTC()
	updated, err := s.loanRepo.UpdateLocked(ctx, req.LoanID, func(l loan.Loan) (loan.Loan, error) {
		return loan.ApplyPayment(l, req.Amount, nowUTC)
	})
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("failed to record loan payment: %w", err)
	}

	if updated.Status == loan.StatusPaid {
		slog.Info("Loan fully paid", "loan_id", updated.ID, "employee_id", updated.EmployeeID)
	}

	return loan.NewLoanResponse(updated), nil
}
