// Package storage connects to MongoDB and prepares the collections the
// server relies on. The unique indexes created here are the authoritative
// enforcement of the username/email uniqueness invariants.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect dials MongoDB and verifies the connection with a ping. The caller
// owns the returned client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique indexes on users.username and users.email.
// Index creation is idempotent, so this runs at every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")

	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo ensure indexes: %w", err)
	}

	return nil
}
