package loan

import "context"

type LoanRepository interface {
	// UpdateLocked loads the loan under a row lock, applies fn and persists the
	// result in the same transaction.
	UpdateLocked(ctx context.Context, id string, fn func(Loan) (Loan, error)) (Loan, error)
}
