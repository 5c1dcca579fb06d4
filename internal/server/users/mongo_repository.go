package users

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/photohub/photohub/internal/common"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("users")}
}

func (r *MongoRepository) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*User, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}}
	return r.findOne(ctx, filter)
}

func (r *MongoRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return count > 0, nil
}

func (r *MongoRepository) Update(ctx context.Context, user *User) (*User, error) {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, common.ErrNotFound
	}

	return user, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	user := &User{}
	err := r.collection.FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
