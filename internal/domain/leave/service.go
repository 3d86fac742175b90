package leave

import "context"

type LeaveService interface {
	// Create records a new leave owned by employeeID, which always comes
	// from the verified token, never from the payload. Status is forced to
	// pending regardless of input.
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (Leave, error)

	// ListAll returns every leave with the owning employee joined in.
	// Admin-only read path.
	ListAll(ctx context.Context) ([]LeaveWithOwner, error)

	// ListOwn returns only the caller's leaves, scoped server-side.
	ListOwn(ctx context.Context, employeeID string) ([]Leave, error)

	// UpdateStatus transitions a leave. Re-applying a status to a terminal
	// leave succeeds and rewrites the same value.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Leave, error)
}
