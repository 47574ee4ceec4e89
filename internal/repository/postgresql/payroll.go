package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/domain/payroll"
	"github.com/transco/backoffice-go/internal/domain/trip"
	"github.com/transco/backoffice-go/internal/pkg/database"
)

type payrollRepository struct {
	db        *database.DB
	employees *employeeRepository
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db, employees: &employeeRepository{db: db}}
}

// ========== INPUTS ==========

// LoadPeriodInputs reads everything inside one repeatable read snapshot so
// employees and their records agree with each other.
func (r *payrollRepository) LoadPeriodInputs(ctx context.Context, period payroll.Period) (payroll.PeriodInputs, error) {
	var in payroll.PeriodInputs

	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := WithTransactionOptions(ctx, r.db, opts, func(tx pgx.Tx) error {
		var err error
		if in.Employees, err = r.employees.ListAll(ContextWithTx(ctx, tx)); err != nil {
			return err
		}
		if in.Attendance, err = r.listAttendance(ctx, tx, period); err != nil {
			return err
		}
		if in.Trips, err = r.listTrips(ctx, tx, period); err != nil {
			return err
		}
		if in.Expenses, err = r.listExpenses(ctx, tx, period); err != nil {
			return err
		}
		if in.Overtime, err = r.listOvertime(ctx, tx, period); err != nil {
			return err
		}
		if in.Undertime, err = r.listUndertime(ctx, tx, period); err != nil {
			return err
		}
		if in.Holidays, err = r.listHolidays(ctx, tx, period); err != nil {
			return err
		}
		if in.AdminAllowances, err = r.listAdminAllowances(ctx, tx, period); err != nil {
			return err
		}
		if in.PetService, err = r.listPetService(ctx, tx, period); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return payroll.PeriodInputs{}, err
	}

	return in, nil
}

func (r *payrollRepository) listAttendance(ctx context.Context, q database.Querier, p payroll.Period) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_id, date, marked_at, id
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return scanAttendanceRows(rows)
}

func (r *payrollRepository) listTrips(ctx context.Context, q database.Querier, p payroll.Period) ([]trip.Trip, error) {
	query := `
		SELECT id, COALESCE(driver_id, ''), COALESCE(helper_id, ''), driver_rate, helper_rate, date, status
		FROM trips
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []trip.Trip
	for rows.Next() {
		var t trip.Trip
		if err := rows.Scan(&t.ID, &t.DriverID, &t.HelperID, &t.DriverRate, &t.HelperRate, &t.Date, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

func (r *payrollRepository) listExpenses(ctx context.Context, q database.Querier, p payroll.Period) ([]trip.Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.driver_ca, e.helper_ca, e.client_charge
		FROM trip_expenses e
		JOIN trips t ON t.id = e.trip_id
		WHERE t.date BETWEEN $1 AND $2
		ORDER BY e.trip_id, e.id
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip expenses: %w", err)
	}
	defer rows.Close()

	var expenses []trip.Expense
	for rows.Next() {
		var e trip.Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.DriverCA, &e.HelperCA, &e.ClientCharge); err != nil {
			return nil, fmt.Errorf("failed to scan trip expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip expenses: %w", err)
	}
	return expenses, nil
}

func (r *payrollRepository) listOvertime(ctx context.Context, q database.Querier, p payroll.Period) ([]payroll.OvertimeRecord, error) {
	query := `
		SELECT id, employee_id, date, hours, type
		FROM overtime_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_id, date, id
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}
	defer rows.Close()

	var records []payroll.OvertimeRecord
	for rows.Next() {
		var o payroll.OvertimeRecord
		if err := rows.Scan(&o.ID, &o.EmployeeID, &o.Date, &o.Hours, &o.Type); err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		records = append(records, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime: %w", err)
	}
	return records, nil
}

func (r *payrollRepository) listUndertime(ctx context.Context, q database.Querier, p payroll.Period) ([]payroll.UndertimeRecord, error) {
	query := `
		SELECT id, employee_id, date, minutes
		FROM undertime_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_id, date, id
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list undertime: %w", err)
	}
	defer rows.Close()

	var records []payroll.UndertimeRecord
	for rows.Next() {
		var u payroll.UndertimeRecord
		if err := rows.Scan(&u.ID, &u.EmployeeID, &u.Date, &u.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan undertime: %w", err)
		}
		records = append(records, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate undertime: %w", err)
	}
	return records, nil
}

func (r *payrollRepository) listHolidays(ctx context.Context, q database.Querier, p payroll.Period) ([]payroll.Holiday, error) {
	query := `
		SELECT date, description, type
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, description
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []payroll.Holiday
	for rows.Next() {
		var h payroll.Holiday
		if err := rows.Scan(&h.Date, &h.Description, &h.Type); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}
	return holidays, nil
}

func (r *payrollRepository) listAdminAllowances(ctx context.Context, q database.Querier, p payroll.Period) ([]payroll.AdminAllowance, error) {
	query := `
		SELECT id, employee_id, date, transportation, meal
		FROM admin_allowances
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_id, date
	`
	rows, err := q.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin allowances: %w", err)
	}
	defer rows.Close()

	var allowances []payroll.AdminAllowance
	for rows.Next() {
		var a payroll.AdminAllowance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Transportation, &a.Meal); err != nil {
			return nil, fmt.Errorf("failed to scan admin allowance: %w", err)
		}
		allowances = append(allowances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate admin allowances: %w", err)
	}
	return allowances, nil
}

func (r *payrollRepository) listPetService(ctx context.Context, q database.Querier, p payroll.Period) ([]payroll.PetServiceRecord, error) {
	query := `
		SELECT employee_id, year, month, qualified
		FROM pet_service_records
		WHERE year * 12 + month BETWEEN $1 AND $2
		ORDER BY employee_id, year, month
	`
	from := p.Start.Year()*12 + int(p.Start.Month())
	to := p.End.Year()*12 + int(p.End.Month())

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet service records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PetServiceRecord
	for rows.Next() {
		var rec payroll.PetServiceRecord
		var month int
		if err := rows.Scan(&rec.EmployeeID, &rec.Year, &month, &rec.Qualified); err != nil {
			return nil, fmt.Errorf("failed to scan pet service record: %w", err)
		}
		rec.Month = time.Month(month)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pet service records: %w", err)
	}
	return records, nil
}

// ========== RECORDS ==========

func (r *payrollRepository) ReplacePeriodRecords(ctx context.Context, period payroll.Period, records []payroll.PayrollRecord) (int64, error) {
	var deleted int64

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM payroll_records WHERE period_start = $1 AND period_end = $2`,
			period.Start, period.End,
		)
		if err != nil {
			return fmt.Errorf("failed to delete payroll records: %w", err)
		}
		deleted = tag.RowsAffected()

		if len(records) == 0 {
			return nil
		}

		query := `
			INSERT INTO payroll_records (
				id, employee_id, period_start, period_end,
				gross_income, net_pay, ipon_pondo, thirteenth_month, date_generated
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(query,
				rec.ID, rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd,
				rec.GrossIncome, rec.NetPay, rec.IponPondo, rec.ThirteenthMonth, rec.DateGenerated,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert payroll records: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func (r *payrollRepository) ListPeriodRecords(ctx context.Context, period payroll.Period) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, e.full_name, pr.period_start, pr.period_end,
			   pr.gross_income, pr.net_pay, pr.ipon_pondo, pr.thirteenth_month, pr.date_generated
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.period_start = $1 AND pr.period_end = $2
		ORDER BY e.full_name, pr.employee_id
	`

	rows, err := q.Query(ctx, query, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.PeriodStart, &rec.PeriodEnd,
			&rec.GrossIncome, &rec.NetPay, &rec.IponPondo, &rec.ThirteenthMonth, &rec.DateGenerated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}
