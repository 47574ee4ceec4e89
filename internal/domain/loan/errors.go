package loan

import "errors"

var (
	ErrLoanNotFound         = errors.New("loan not found")
	ErrLoanAlreadyPaid      = errors.New("loan is already fully paid")
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
)
