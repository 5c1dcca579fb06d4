package photos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/photohub/photohub/internal/common"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("photos")}
}

// ownerLookupStages joins the owning account into each photo under "owner",
// keeping only its public fields.
func ownerLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "owner.name", Value: 0},
			{Key: "owner.email", Value: 0},
			{Key: "owner.password", Value: 0},
		}}},
	}
}

func (r *MongoRepository) Create(ctx context.Context, photo *Photo) (*Photo, error) {
	if photo.ID.IsZero() {
		photo.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	photo.CreatedAt = now
	photo.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return photo, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}},
	}, ownerLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*Photo
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return results[0], nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*Photo, error) {
	cursor, err := r.collection.Aggregate(ctx, ownerLookupStages())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cursor.Close(ctx)

	photos := []*Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return photos, nil
}

func (r *MongoRepository) Update(ctx context.Context, id, title, description string) (*Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   time.Now().UTC(),
	}}

	photo := &Photo{}
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return photo, nil
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

func (r *MongoRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return common.ErrNotFound
	}

	_, err = r.collection.DeleteMany(ctx, bson.M{"user": oid})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
