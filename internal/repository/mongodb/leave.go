package mongodb

import (
	"context"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionLeaves)
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	now := time.Now().UTC()
	lv.CreatedAt = now
	lv.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, lv)
	if err != nil {
		return leave.Leave{}, err
	}

	lv.ID = res.InsertedID.(bson.ObjectID)
	return lv, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	var lv leave.Leave
	err = r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&lv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return lv, nil
}

func (r *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.Leave, error) {
	return r.find(ctx, bson.M{})
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	oid, err := bson.ObjectIDFromHex(employeeID)
	if err != nil {
		// An unparsable owner id can never match a stored reference.
		return []leave.Leave{}, nil
	}
	return r.find(ctx, bson.M{"employee": oid})
}

func (r *leaveRepositoryImpl) find(ctx context.Context, filter bson.M) ([]leave.Leave, error) {
	cursor, err := r.collection().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leaves []leave.Leave
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.Leave, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	var lv leave.Leave
	err = r.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&lv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return lv, nil
}

func (r *leaveRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(employeeID)
	if err != nil {
		return 0, nil
	}

	res, err := r.collection().DeleteMany(ctx, bson.M{"employee": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
