package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/transco/backoffice-go/internal/domain/payroll"
)

// PayrollJobs keeps the running cut-off's records in step with the day's
// attendance and trips.
type PayrollJobs struct {
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		now:            time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("regenerate_current_cutoff", interval, j.RegenerateCurrentCutoff)
}

// RegenerateCurrentCutoff regenerates the cut-off containing today.
func (j *PayrollJobs) RegenerateCurrentCutoff(ctx context.Context) error {
	period := payroll.CutoffFor(j.now())
	slog.Info("Cron: Regenerating payroll for current cut-off", "period", period.String())

	result, err := j.payrollService.GeneratePeriod(ctx, payroll.GeneratePeriodRequest{
		PeriodStart: period.Start.Format(payroll.DateLayout),
		PeriodEnd:   period.End.Format(payroll.DateLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to regenerate payroll for %s: %w", period, err)
	}

	slog.Info("Cron: Payroll regenerated",
		"period", period.String(),
		"records", result.RecordsGenerated,
		"replaced", result.RecordsReplaced)
	return nil
}
