package leave

import (
	"context"
	"testing"

	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeLeaveRepo struct {
	leaves map[string]leave.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.Leave)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, lv leave.Leave) (leave.Leave, error) {
	lv.ID = bson.NewObjectID()
	r.leaves[lv.ID.Hex()] = lv
	return lv, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	lv, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return lv, nil
}

func (r *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.Leave, error) {
	out := make([]leave.Leave, 0, len(r.leaves))
	for _, lv := range r.leaves {
		out = append(out, lv)
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, lv := range r.leaves {
		if lv.EmployeeID.Hex() == employeeID {
			out = append(out, lv)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) (leave.Leave, error) {
	lv, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	lv.Status = status
	r.leaves[id] = lv
	return lv, nil
}

func (r *fakeLeaveRepo) DeleteByEmployee(_ context.Context, employeeID string) (int64, error) {
	var deleted int64
	for id, lv := range r.leaves {
		if lv.EmployeeID.Hex() == employeeID {
			delete(r.leaves, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		r.employees[emp.ID.Hex()] = emp
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = bson.NewObjectID()
	r.employees[emp.ID.Hex()] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateProfile(_ context.Context, id string, name *string, avatar *string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if name != nil {
		emp.Name = *name
	}
	if avatar != nil {
		emp.Avatar = *avatar
	}
	r.employees[id] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func TestCreate_ForcesPendingAndOwner(t *testing.T) {
	owner := employee.Employee{ID: bson.NewObjectID(), Name: "John Doe", Email: "john@example.com"}
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(owner))

	created, err := svc.Create(context.Background(), owner.ID.Hex(), leave.CreateLeaveRequest{
		StartDate: "2026-01-20",
		EndDate:   "2026-01-25",
		Days:      5,
		Reason:    "Family vacation",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, owner.ID, created.EmployeeID)
	assert.Equal(t, 5, created.Days)
	assert.Equal(t, "Family vacation", created.Reason)
	assert.False(t, created.ID.IsZero())
}

func TestCreate_UnknownEmployee(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := svc.Create(context.Background(), bson.NewObjectID().Hex(), leave.CreateLeaveRequest{
		StartDate: "2026-01-20",
		EndDate:   "2026-01-25",
		Days:      5,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListAll_JoinsOwner(t *testing.T) {
	john := employee.Employee{ID: bson.NewObjectID(), Name: "John Doe", Email: "john@example.com"}
	jane := employee.Employee{ID: bson.NewObjectID(), Name: "Jane Roe", Email: "jane@example.com"}
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(john, jane))

	_, err := svc.Create(context.Background(), john.ID.Hex(), leave.CreateLeaveRequest{
		StartDate: "2026-01-20", EndDate: "2026-01-25", Days: 5,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), jane.ID.Hex(), leave.CreateLeaveRequest{
		StartDate: "2026-02-01", EndDate: "2026-02-01", Days: 1,
	})
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	byEmail := make(map[string]leave.LeaveWithOwner)
	for _, lv := range all {
		byEmail[lv.EmployeeEmail] = lv
	}
	assert.Equal(t, "John Doe", byEmail["john@example.com"].EmployeeName)
	assert.Equal(t, "Jane Roe", byEmail["jane@example.com"].EmployeeName)
}

func TestListAll_OrphanedOwnerStaysEmpty(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo())

	_, err := leaveRepo.Create(context.Background(), leave.Leave{
		EmployeeID: bson.NewObjectID(),
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].EmployeeName)
	assert.Empty(t, all[0].EmployeeEmail)
}

func TestListOwn_ScopedToOwner(t *testing.T) {
	john := employee.Employee{ID: bson.NewObjectID(), Name: "John Doe", Email: "john@example.com"}
	jane := employee.Employee{ID: bson.NewObjectID(), Name: "Jane Roe", Email: "jane@example.com"}
	svc := NewLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo(john, jane))

	_, err := svc.Create(context.Background(), john.ID.Hex(), leave.CreateLeaveRequest{
		StartDate: "2026-01-20", EndDate: "2026-01-25", Days: 5,
	})
	require.NoError(t, err)

	own, err := svc.ListOwn(context.Background(), jane.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, own)

	own, err = svc.ListOwn(context.Background(), john.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestUpdateStatus(t *testing.T) {
	owner := employee.Employee{ID: bson.NewObjectID(), Name: "John Doe", Email: "john@example.com"}
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(owner))

	created, err := svc.Create(context.Background(), owner.ID.Hex(), leave.CreateLeaveRequest{
		StartDate: "2026-01-20", EndDate: "2026-01-25", Days: 5,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID.Hex(), leave.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)

	// Re-applying the same terminal status succeeds.
	updated, err = svc.UpdateStatus(context.Background(), created.ID.Hex(), leave.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := svc.UpdateStatus(context.Background(), bson.NewObjectID().Hex(), leave.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}
