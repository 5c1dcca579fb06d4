package users

import (
	"context"
)

// Repository is the storage boundary for accounts. Implementations report
// common.ErrNotFound for missing records and common.ErrAlreadyExists when a
// write violates the username/email unique indexes; the storage layer is
// the authoritative serialization point for those invariants.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
}
