package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// ListAll returns every employee with their loans attached, ordered by name.
	ListAll(ctx context.Context) ([]Employee, error)
}
