package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	CollectionEmployees = "employees"
	CollectionAdmins    = "admins"
	CollectionLeaves    = "leaves"
)

type DB struct {
	client *mongo.Client
	*mongo.Database
}

func NewMongoDB(uri string, dbName string) (*DB, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetMinPoolSize(5))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &DB{client: client, Database: client.Database(dbName)}, nil
}

// EnsureIndexes creates the unique email indexes both principal collections
// rely on. Safe to call on every startup.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(CollectionEmployees).Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}
	if _, err := db.Collection(CollectionAdmins).Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}

	// Leaves are always queried by owner.
	ownerIdx := mongo.IndexModel{Keys: bson.D{{Key: "employee", Value: 1}}}
	_, err := db.Collection(CollectionLeaves).Indexes().CreateOne(ctx, ownerIdx)
	return err
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
