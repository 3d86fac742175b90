package mongodb

import (
	"context"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(database.CollectionEmployees)
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, emp)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	emp.ID = res.InsertedID.(bson.ObjectID)
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	var emp employee.Employee
	// Exact, case-sensitive match.
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	var emp employee.Employee
	err = r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	cursor, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var emps []employee.Employee
	if err := cursor.All(ctx, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, id string, name *string, avatar *string) (employee.Employee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != nil {
		set["name"] = *name
	}
	if avatar != nil {
		set["avatar"] = *avatar
	}

	var emp employee.Employee
	err = r.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return employee.ErrEmployeeNotFound
	}

	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
