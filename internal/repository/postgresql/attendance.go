package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/transco/backoffice-go/internal/domain/attendance"
	"github.com/transco/backoffice-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, status, computed_pay, marked_at`

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var a attendance.Record
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.ComputedPay, &a.MarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// lockAttendanceForDay reads the day's rows with FOR UPDATE.
func lockAttendanceForDay(ctx context.Context, q database.Querier, employeeID string, date time.Time) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
		ORDER BY marked_at, id
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for day: %w", err)
	}
	return scanAttendanceRows(rows)
}

// MarkDay serialises writers of one (employee, date) with a transaction scoped
// advisory lock, since the day may have no rows to lock yet.
func (r *attendanceRepository) MarkDay(ctx context.Context, employeeID string, date time.Time, plan func([]attendance.Record) attendance.MarkPlan) (attendance.MarkPlan, error) {
	var applied attendance.MarkPlan

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		dayKey := employeeID + ":" + date.Format("2006-01-02")
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, dayKey); err != nil {
			return fmt.Errorf("failed to lock attendance day: %w", err)
		}

		existing, err := lockAttendanceForDay(ctx, tx, employeeID, date)
		if err != nil {
			return err
		}

		applied = plan(existing)

		if len(applied.DeleteIDs) > 0 {
			if _, err := tx.Exec(ctx, `DELETE FROM attendance_records WHERE id = ANY($1)`, applied.DeleteIDs); err != nil {
				return fmt.Errorf("failed to delete attendance: %w", err)
			}
		}

		if rec := applied.Insert; rec != nil {
			query := `
				INSERT INTO attendance_records (` + attendanceColumns + `)
				VALUES ($1, $2, $3, $4, $5, $6)
			`
			if _, err := tx.Exec(ctx, query, rec.ID, rec.EmployeeID, rec.Date, rec.Status, rec.ComputedPay, rec.MarkedAt); err != nil {
				return fmt.Errorf("failed to insert attendance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.MarkPlan{}, err
	}

	return applied, nil
}
