// Package photos holds the Photo model, its repository, and the service
// enforcing the owner-only mutation rules.
package photos

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is an owned media record. The owner reference is set at creation and
// never changes afterwards.
type Photo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	UserID      primitive.ObjectID `bson:"user" json:"-"`
	Owner       *Owner             `bson:"owner,omitempty" json:"user,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Owner is the public projection of the owning account embedded in photo
// reads. It never carries the credential field.
type Owner struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	AvatarURL string             `bson:"avatar_url" json:"avatar_url"`
}
