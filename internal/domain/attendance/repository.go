package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// MarkDay locks the (employee, date) rows, passes them to plan and applies
	// the returned deletes and insert in the same transaction.
	MarkDay(ctx context.Context, employeeID string, date time.Time, plan func(existing []Record) MarkPlan) (MarkPlan, error)
}
