package admin

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Admin is a console principal. Admins are provisioned by the seed command,
// never through the public API, and are read-mostly afterwards.
type Admin struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"passwordHash"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}
