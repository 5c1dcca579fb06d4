package photos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photohub/photohub/internal/common"
	"github.com/photohub/photohub/internal/server/auth"
	"github.com/photohub/photohub/internal/server/config"
)

// CreateRequest is the photo creation payload. The optional owner field lets
// a client claim an owner explicitly; it must match the authenticated subject.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	UserID      string `json:"user"`
}

// UpdateRequest carries the mutable photo fields. A field absent from the
// payload keeps its stored value; an explicit empty string clears it.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type Service struct {
	repo     Repository
	accounts AccountChecker
	config   *config.Config
}

func NewService(repo Repository, accounts AccountChecker, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		config:   cfg,
	}
}

// List returns all photos with their owners embedded. It is public and
// requires no authentication.
func (s *Service) List(ctx context.Context) ([]*Photo, error) {
	photos, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrInternal
	}
	return photos, nil
}

// Get returns a single photo with its owner embedded.
func (s *Service) Get(ctx context.Context, id string) (*Photo, error) {
	photo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return photo, nil
}

// Create stores a photo owned by the authenticated subject. The creator must
// still exist, and a payload claiming a different owner is rejected.
func (s *Service) Create(ctx context.Context, authenticatedID string, req CreateRequest) (*Photo, error) {
	if req.ImageURL == "" {
		return nil, common.ErrFieldsRequired
	}

	exists, err := s.accounts.Exists(ctx, authenticatedID)
	if err != nil {
		return nil, common.ErrInternal
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	claimedOwner := req.UserID
	if claimedOwner == "" {
		claimedOwner = authenticatedID
	}
	if err := auth.AuthorizeCreateFor(authenticatedID, claimedOwner); err != nil {
		return nil, err
	}

	ownerID, err := primitive.ObjectIDFromHex(authenticatedID)
	if err != nil {
		return nil, common.ErrInternal
	}

	photo := &Photo{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		UserID:      ownerID,
	}

	photo, err = s.repo.Create(ctx, photo)
	if err != nil {
		return nil, common.ErrInternal
	}

	return photo, nil
}

// Update mutates title and description of a photo owned by the subject.
func (s *Service) Update(ctx context.Context, authenticatedID, id string, req UpdateRequest) (*Photo, error) {
	photo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	if err := auth.AuthorizePhoto(authenticatedID, photo.UserID.Hex()); err != nil {
		return nil, err
	}

	title := photo.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := photo.Description
	if req.Description != nil {
		description = *req.Description
	}

	updated, err := s.repo.Update(ctx, id, title, description)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return updated, nil
}

// Delete removes a photo owned by the subject.
func (s *Service) Delete(ctx context.Context, authenticatedID, id string) error {
	photo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}

	if err := auth.AuthorizePhoto(authenticatedID, photo.UserID.Hex()); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}

	return nil
}
