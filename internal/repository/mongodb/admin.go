package mongodb

import (
	"context"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/domain/admin"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

func (r *adminRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionAdmins)
}

func (r *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	var adm admin.Admin
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&adm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, err
	}
	return adm, nil
}

// Upsert inserts the admin unless one with the same email already exists.
// Returns the stored document and whether a new one was created.
func (r *adminRepositoryImpl) Upsert(ctx context.Context, adm admin.Admin) (admin.Admin, bool, error) {
	var existing admin.Admin
	err := r.collection().FindOne(ctx, bson.M{"email": adm.Email}).Decode(&existing)
	if err == nil {
		return existing, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return admin.Admin{}, false, err
	}

	now := time.Now().UTC()
	adm.CreatedAt = now
	adm.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, adm)
	if err != nil {
		return admin.Admin{}, false, err
	}
	adm.ID = res.InsertedID.(bson.ObjectID)
	return adm, true, nil
}
