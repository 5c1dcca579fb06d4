// Package users holds the Account model, its repository, and the identity
// resolution service: direct sign-up/sign-in and federated (Google)
// account reconciliation.
package users

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultAvatarURL is used when an account is created without an avatar.
const DefaultAvatarURL = "https://firebasestorage.googleapis.com/v0/b/photohub-cfe59.appspot.com/o/nophoto.png?alt=media&token=86eb1838-d578-4459-9948-ef33a87f6692"

// User is a registered account. Username and email are globally unique,
// enforced by unique indexes in storage. The password credential is never
// serialized into responses.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Username  string             `bson:"username" json:"username"`
	AvatarURL string             `bson:"avatar_url" json:"avatar_url"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
}
