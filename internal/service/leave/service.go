package leave

import (
	"context"
	"fmt"

	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements leave.LeaveService. The owner comes from the verified
// token; the payload cannot name a different employee. Status always enters
// at pending.
func (s *LeaveServiceImpl) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.Leave, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.Leave{}, err
	}

	start, end := req.Dates()
	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		StartDate:  start,
		EndDate:    end,
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// ListAll implements leave.LeaveService. Leaves and the roster are fetched
// in parallel, then joined in memory by owner id.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveWithOwner, error) {
	var leaves []leave.Leave
	var emps []employee.Employee

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		emps, err = s.employeeRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	byID := make(map[string]employee.Employee, len(emps))
	for _, emp := range emps {
		byID[emp.ID.Hex()] = emp
	}

	out := make([]leave.LeaveWithOwner, 0, len(leaves))
	for _, lv := range leaves {
		joined := leave.LeaveWithOwner{Leave: lv}
		if owner, ok := byID[lv.EmployeeID.Hex()]; ok {
			joined.EmployeeName = owner.Name
			joined.EmployeeEmail = owner.Email
		}
		out = append(out, joined)
	}
	return out, nil
}

// ListOwn implements leave.LeaveService. Scoping happens at the store query,
// keyed by the token-derived owner id.
func (s *LeaveServiceImpl) ListOwn(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own leaves: %w", err)
	}
	return leaves, nil
}

// UpdateStatus implements leave.LeaveService. Redundant transitions on a
// terminal leave are accepted and rewrite the same value.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.Leave, error) {
	return s.leaveRepo.UpdateStatus(ctx, id, leave.Status(req.Status))
}
