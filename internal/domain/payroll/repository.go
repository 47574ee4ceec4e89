package payroll

import (
	"context"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/trip"
)

// PeriodInputs is the raw data of every employee for one period.
type PeriodInputs struct {
	Employees       []employee.Employee
	Attendance      []attendance.Record
	Trips           []trip.Trip
	Expenses        []trip.Expense
	Overtime        []OvertimeRecord
	Undertime       []UndertimeRecord
	Holidays        []Holiday
	AdminAllowances []AdminAllowance
	PetService      []PetServiceRecord
}

// For builds the engine inputs of one employee. The slices are shared and
// must be treated as read-only.
func (pi PeriodInputs) For(e employee.Employee, p Period) Inputs {
	return Inputs{
		Employee:        e,
		Period:          p,
		Attendance:      pi.Attendance,
		Trips:           pi.Trips,
		Expenses:        pi.Expenses,
		Overtime:        pi.Overtime,
		Undertime:       pi.Undertime,
		Holidays:        pi.Holidays,
		AdminAllowances: pi.AdminAllowances,
		PetService:      pi.PetService,
	}
}

// PayrollRepository defines data access methods for payroll.
type PayrollRepository interface {
	// LoadPeriodInputs reads every employee with their loans and all records
	// dated inside the period.
	LoadPeriodInputs(ctx context.Context, period Period) (PeriodInputs, error)

	// ReplacePeriodRecords deletes the period's records and inserts records in
	// a single transaction. It returns the number of records deleted.
	ReplacePeriodRecords(ctx context.Context, period Period, records []PayrollRecord) (int64, error)

	ListPeriodRecords(ctx context.Context, period Period) ([]PayrollRecord, error)
}
