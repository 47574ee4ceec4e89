package loan

import "context"

// LoanService defines business logic for loan repayments
type LoanService interface {
	// RecordPayment applies an explicit payment to one loan
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (LoanResponse, error)
}
