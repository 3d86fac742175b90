package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Employee is a self-service portal principal. Email is unique across the
// collection (enforced by index) and immutable after signup.
type Employee struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"passwordHash"`
	Avatar       string        `bson:"avatar,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}
