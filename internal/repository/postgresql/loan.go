package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/transco/backoffice-go/internal/domain/loan"
	"github.com/transco/backoffice-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, employee_id, amount, amortization, paid_amount, status, created_at, updated_at`

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(&l.ID, &l.EmployeeID, &l.Amount, &l.Amortization, &l.PaidAmount, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *loanRepository) UpdateLocked(ctx context.Context, id string, fn func(loan.Loan) (loan.Loan, error)) (loan.Loan, error) {
	var updated loan.Loan

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		current, err := scanLoan(tx.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return loan.ErrLoanNotFound
			}
			return fmt.Errorf("failed to lock loan: %w", err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		query := `
			UPDATE loans
			SET paid_amount = $2, status = $3, updated_at = $4
			WHERE id = $1
			RETURNING ` + loanColumns

		updated, err = scanLoan(tx.QueryRow(ctx, query, next.ID, next.PaidAmount, next.Status, next.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}
		return nil
	})
	if err != nil {
		return loan.Loan{}, err
	}

	return updated, nil
}
