package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/photohub/photohub/internal/common"
	"github.com/photohub/photohub/internal/logging"
	"github.com/photohub/photohub/internal/server/auth"
	"github.com/photohub/photohub/internal/server/config"
)

// PhotoCleaner removes the photos owned by a deleted account. The cleanup is
// best-effort: account deletion does not roll back when it fails.
type PhotoCleaner interface {
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// SignUpRequest is the direct sign-up payload.
type SignUpRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	AvatarURL       string `json:"avatarUrl"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignInRequest identifies an account by email or username.
type SignInRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleRequest is the federated identity assertion. Email is the sole
// correlation key against existing accounts.
type GoogleRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateRequest is the profile update payload. Name and avatar are optional:
// when absent the stored value is kept, while an explicit empty string
// clears it.
type UpdateRequest struct {
	Name            *string `json:"name"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	AvatarURL       *string `json:"avatarUrl"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
}

// Service resolves credentials and federated profiles to accounts and owns
// the account lifecycle.
type Service struct {
	repo          Repository
	photos        PhotoCleaner
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, photos PhotoCleaner, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		repo:          repo,
		photos:        photos,
		logger:        logger,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// SignUp creates an account from explicit credentials. No token is minted;
// the caller signs in separately.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, common.ErrFieldsRequired
	}

	_, err := s.repo.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err == nil {
		return nil, common.ErrAlreadyExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	if req.Password != req.ConfirmPassword {
		return nil, common.ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Name:      req.Name,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
		Email:     req.Email,
		Password:  hash,
	}
	if user.AvatarURL == "" {
		user.AvatarURL = DefaultAvatarURL
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		// The check above is not atomic with the insert; a late unique-index
		// violation is an authoritative conflict, not a bug.
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrInternal
	}

	return user, nil
}

// SignIn verifies credentials and mints a session token. An unknown
// identifier and a wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*User, string, error) {
	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		return nil, "", common.ErrFieldsRequired
	}

	user, err := s.repo.GetByUsernameOrEmail(ctx, identifier, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrInternal
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

// ResolveGoogle reconciles a federated profile with the account base. An
// account matched by email signs in (created=false); an unseen email creates
// an account with a synthesized username and a throwaway credential
// (created=true). There is no linking by username: email is the only key.
func (s *Service) ResolveGoogle(ctx context.Context, req GoogleRequest) (*User, string, bool, error) {
	if req.Email == "" {
		return nil, "", false, common.ErrFieldsRequired
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		token, tokenErr := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
		if tokenErr != nil {
			return nil, "", false, common.ErrInternal
		}
		return user, token, false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, "", false, common.ErrInternal
	}

	username, err := s.synthesizeUsername(req.Name)
	if err != nil {
		return nil, "", false, common.ErrInternal
	}

	// The account owner never learns this password; the account is only
	// usable through federated sign-in until the password is changed.
	hash, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return nil, "", false, common.ErrInternal
	}

	user = &User{
		Name:      req.Name,
		Username:  username,
		AvatarURL: req.AvatarURL,
		Email:     req.Email,
		Password:  hash,
	}
	if user.AvatarURL == "" {
		user.AvatarURL = DefaultAvatarURL
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		// The suffix is not re-checked for uniqueness before insert; a
		// collision surfaces as a storage conflict and is not retried.
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, "", false, common.ErrAlreadyExists
		}
		return nil, "", false, common.ErrInternal
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", false, common.ErrInternal
	}

	return user, token, true, nil
}

// Get returns the account by identifier.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// Update mutates the subject's own profile. Username and email uniqueness is
// re-checked against other accounts; the password changes only when provided,
// and then the confirmation must match.
func (s *Service) Update(ctx context.Context, authenticatedID, targetID string, req UpdateRequest) (*User, error) {
	if err := auth.AuthorizeSelf(authenticatedID, targetID); err != nil {
		return nil, err
	}

	if req.Username == "" || req.Email == "" {
		return nil, common.ErrFieldsRequired
	}

	existing, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	byUsername, err := s.repo.GetByUsername(ctx, req.Username)
	if err == nil && byUsername.ID != existing.ID {
		return nil, common.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	byEmail, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil && byEmail.ID != existing.ID {
		return nil, common.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	if req.Password != "" {
		if req.Password != req.ConfirmPassword {
			return nil, common.ErrPasswordMismatch
		}
		hash, hashErr := auth.HashPassword(req.Password)
		if hashErr != nil {
			return nil, common.ErrInternal
		}
		existing.Password = hash
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	existing.Username = req.Username
	existing.Email = req.Email
	if req.AvatarURL != nil {
		existing.AvatarURL = *req.AvatarURL
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return updated, nil
}

// Delete removes the subject's own account and then its photos. The photo
// cleanup is best-effort and never fails the deletion.
func (s *Service) Delete(ctx context.Context, authenticatedID, targetID string) error {
	if err := auth.AuthorizeSelf(authenticatedID, targetID); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}

	if err := s.photos.DeleteByOwner(ctx, targetID); err != nil {
		s.logger.Warn(ctx, "failed to remove photos of deleted account", "user_id", targetID, "error", err)
	}

	return nil
}

// synthesizeUsername derives a username from a display name: lower-cased,
// spaces stripped, with a random numeric suffix to reduce collision odds.
func (s *Service) synthesizeUsername(name string) (string, error) {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if base == "" {
		base = "user"
	}
	suffix, err := common.MakeRandDigits(4)
	if err != nil {
		return "", err
	}
	return base + suffix, nil
}
