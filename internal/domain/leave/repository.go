package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, lv Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListAll(ctx context.Context) ([]Leave, error)

	// ListByEmployee filters by owner at the store, not in the caller.
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)

	// UpdateStatus rewrites the status unconditionally; there is no
	// conflict detection, last write wins.
	UpdateStatus(ctx context.Context, id string, status Status) (Leave, error)

	// DeleteByEmployee removes every leave owned by the employee and
	// returns how many were deleted.
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}
