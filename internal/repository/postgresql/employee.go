package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/transco/backoffice-go/internal/domain/employee"
	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, role, daily_rate, rate,
	sss, philhealth, pagibig, mp2,
	uniform_deduction, office_ca, sss_loan, pagibig_loan, other_deduction,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.Role, &e.DailyRate, &e.Rate,
		&e.SSS, &e.PhilHealth, &e.PagIbig, &e.MP2,
		&e.UniformDeduction, &e.OfficeCA, &e.SSSLoan, &e.PagIbigLoan, &e.OtherDeduction,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	loans, err := listLoans(ctx, q, []string{e.ID})
	if err != nil {
		return employee.Employee{}, err
	}
	e.Loans = loans[e.ID]

	return e, nil
}

func (r *employeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return listEmployees(ctx, GetQuerier(ctx, r.db))
}

// listEmployees returns every employee ordered by name with loans attached.
func listEmployees(ctx context.Context, q database.Querier) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY full_name, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	var ids []string
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	rows.Close()

	loans, err := listLoans(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].Loans = loans[employees[i].ID]
	}

	return employees, nil
}

// listLoans groups the loans of the given employees by employee id, oldest first.
func listLoans(ctx context.Context, q database.Querier, employeeIDs []string) (map[string][]loan.Loan, error) {
	byEmployee := make(map[string][]loan.Loan)
	if len(employeeIDs) == 0 {
		return byEmployee, nil
	}

	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE employee_id = ANY($1)
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		byEmployee[l.EmployeeID] = append(byEmployee[l.EmployeeID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}

	return byEmployee, nil
}
