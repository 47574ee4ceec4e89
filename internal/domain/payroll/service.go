package payroll

import "context"

// PayrollService defines business logic for payroll periods
type PayrollService interface {
	// GeneratePeriod values every employee and replaces the period's records
	GeneratePeriod(ctx context.Context, req GeneratePeriodRequest) (GeneratePeriodResponse, error)

	// ListRecords returns the persisted records of a period
	ListRecords(ctx context.Context, filter PeriodFilter) ([]PayrollRecordResponse, error)

	// PreviewLines computes the full breakdown of a period without persisting
	PreviewLines(ctx context.Context, filter PeriodFilter) ([]PayrollLineResponse, error)
}
