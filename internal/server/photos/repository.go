package photos

import (
	"context"
)

// Repository is the storage boundary for photos. List and GetByID return
// photos with the Owner projection populated; implementations report
// common.ErrNotFound for missing records.
type Repository interface {
	Create(ctx context.Context, photo *Photo) (*Photo, error)
	GetByID(ctx context.Context, id string) (*Photo, error)
	List(ctx context.Context) ([]*Photo, error)
	Update(ctx context.Context, id, title, description string) (*Photo, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// AccountChecker reports whether an account exists. The users repository
// satisfies it; photos only need the existence check, not the account data.
type AccountChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
