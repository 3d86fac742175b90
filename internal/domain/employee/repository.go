package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// UpdateProfile sets only the provided fields; nil pointers leave the
	// stored value untouched.
	UpdateProfile(ctx context.Context, id string, name *string, avatar *string) (Employee, error)

	Delete(ctx context.Context, id string) error
}
