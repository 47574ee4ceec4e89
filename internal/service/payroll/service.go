package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/transco/backoffice-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	workers     int
	now         func() time.Time
}

// NewPayrollService builds the payroll service. workers bounds how many
// employees are valued concurrently; zero or less uses GOMAXPROCS.
func NewPayrollService(payrollRepo payroll.PayrollRepository, workers int) payroll.PayrollService {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		workers:     workers,
		now:         time.Now,
	}
}

// GeneratePeriod computes every employee's record for the period and then
// replaces the period's stored records in one write.
func (s *PayrollServiceImpl) GeneratePeriod(ctx context.Context, req payroll.GeneratePeriodRequest) (payroll.GeneratePeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePeriodResponse{}, err
	}
	period := req.Period

	lines, err := s.computePeriod(ctx, period)
	if err != nil {
		return payroll.GeneratePeriodResponse{}, err
	}

	generatedAt := s.now().UTC()
	records := make([]payroll.PayrollRecord, 0, len(lines))
	totalGross, totalNet := decimal.Zero, decimal.Zero
	for _, line := range lines {
		id, err := uuid.NewV7()
		if err != nil {
			return payroll.GeneratePeriodResponse{}, fmt.Errorf("failed to generate payroll record id: %w", err)
		}
		records = append(records, line.Record(id.String(), generatedAt))
		totalGross = totalGross.Add(line.GrossIncome)
		totalNet = totalNet.Add(line.NetPay)
	}

	replaced, err := s.payrollRepo.ReplacePeriodRecords(ctx, period, records)
	if err != nil {
		return payroll.GeneratePeriodResponse{}, fmt.Errorf("failed to replace payroll records: %w", err)
	}

	slog.Info("Generated payroll period",
		"period", period.String(),
		"records", len(records),
		"replaced", replaced,
	)

	return payroll.GeneratePeriodResponse{
		PeriodStart:      period.Start.Format(payroll.DateLayout),
		PeriodEnd:        period.End.Format(payroll.DateLayout),
		MonthEnd:         period.IsMonthEnd(),
		RecordsGenerated: len(records),
		RecordsReplaced:  replaced,
		TotalGross:       totalGross.Round(2),
		TotalNet:         totalNet.Round(2),
		GeneratedAt:      generatedAt,
	}, nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.PayrollRecordResponse, error) {
	if err := filter.Validate(s.now()); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListPeriodRecords(ctx, filter.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	resp := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, payroll.NewPayrollRecordResponse(r))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) PreviewLines(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.PayrollLineResponse, error) {
	if err := filter.Validate(s.now()); err != nil {
		return nil, err
	}

	lines, err := s.computePeriod(ctx, filter.Period)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PayrollLineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, payroll.NewPayrollLineResponse(l))
	}
	return resp, nil
}

// computePeriod loads the period's data and values every employee. Lines keep
// the repository's employee order.
func (s *PayrollServiceImpl) computePeriod(ctx context.Context, period payroll.Period) ([]payroll.Line, error) {
	inputs, err := s.payrollRepo.LoadPeriodInputs(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll inputs: %w", err)
	}

	lines := make([]payroll.Line, len(inputs.Employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, emp := range inputs.Employees {
		i, emp := i, emp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines[i] = payroll.Compute(inputs.For(emp, period))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute payroll: %w", err)
	}

	return lines, nil
}
