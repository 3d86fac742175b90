package leave

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is inside the status domain. Anything else is a
// validation failure and never reaches the store.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled:
		return true
	}
	return false
}

// Leave is a single leave record. The owning employee reference is set from
// the verified token at creation and never changes afterwards. Lifecycle:
// created pending, moved to approved or cancelled by an admin; re-applying
// a status to a terminal record rewrites the same value.
type Leave struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	EmployeeID bson.ObjectID `bson:"employee"`
	StartDate  time.Time     `bson:"startDate"`
	EndDate    time.Time     `bson:"endDate"`
	Days       int           `bson:"days"`
	Reason     string        `bson:"reason,omitempty"`
	Status     Status        `bson:"status"`
	CreatedAt  time.Time     `bson:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt"`
}

// LeaveWithOwner is the admin read view: a leave with the owning employee's
// name and email joined in.
type LeaveWithOwner struct {
	Leave
	EmployeeName  string
	EmployeeEmail string
}
