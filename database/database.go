package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB bundles the Mongo client and the two application collections. It is
// constructed once in main and handed to the stores.
type DB struct {
	Client *mongo.Client
	Users  *mongo.Collection
	Posts  *mongo.Collection
}

func Connect(uri, name string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(name)
	log.Println("Connected to MongoDB successfully")

	return &DB{
		Client: client,
		Users:  db.Collection("users"),
		Posts:  db.Collection("posts"),
	}, nil
}

// EnsureIndexes creates the unique index on users.email. Duplicate signups
// racing past the handler-level check fail here with a duplicate key error.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (db *DB) Disconnect() error {
	if db == nil || db.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
