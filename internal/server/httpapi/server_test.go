package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photohub/photohub/internal/common"
	"github.com/photohub/photohub/internal/logging"
	"github.com/photohub/photohub/internal/server/config"
	"github.com/photohub/photohub/internal/server/photos"
	"github.com/photohub/photohub/internal/server/users"
)

// --- in-memory repositories ---

type fakeUserRepo struct {
	users map[string]*users.User
	calls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*users.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	f.calls++
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*users.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) Exists(ctx context.Context, id string) (bool, error) {
	f.calls++
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *users.User) (*users.User, error) {
	f.calls++
	if _, ok := f.users[user.ID.Hex()]; !ok {
		return nil, common.ErrNotFound
	}
	f.users[user.ID.Hex()] = user
	return user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.calls++
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakePhotoRepo struct {
	photos map[string]*photos.Photo
	calls  int
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: map[string]*photos.Photo{}}
}

func (f *fakePhotoRepo) Create(ctx context.Context, photo *photos.Photo) (*photos.Photo, error) {
	f.calls++
	if photo.ID.IsZero() {
		photo.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	photo.CreatedAt = now
	photo.UpdatedAt = now
	f.photos[photo.ID.Hex()] = photo
	return photo, nil
}

func (f *fakePhotoRepo) GetByID(ctx context.Context, id string) (*photos.Photo, error) {
	f.calls++
	p, ok := f.photos[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return p, nil
}

func (f *fakePhotoRepo) List(ctx context.Context) ([]*photos.Photo, error) {
	f.calls++
	out := []*photos.Photo{}
	for _, p := range f.photos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePhotoRepo) Update(ctx context.Context, id, title, description string) (*photos.Photo, error) {
	f.calls++
	p, ok := f.photos[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (f *fakePhotoRepo) Delete(ctx context.Context, id string) error {
	f.calls++
	if _, ok := f.photos[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.photos, id)
	return nil
}

func (f *fakePhotoRepo) DeleteByOwner(ctx context.Context, ownerID string) error {
	f.calls++
	for id, p := range f.photos {
		if p.UserID.Hex() == ownerID {
			delete(f.photos, id)
		}
	}
	return nil
}

// --- harness ---

type testEnv struct {
	handler   http.Handler
	userRepo  *fakeUserRepo
	photoRepo *fakePhotoRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: 7 * 24 * time.Hour,
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	userRepo := newFakeUserRepo()
	photoRepo := newFakePhotoRepo()

	us := users.NewService(userRepo, photoRepo, cfg, logger)
	ps := photos.NewService(photoRepo, userRepo, cfg)

	srv := NewServer(":0", logger, us, ps, cfg.SecretKey, cfg.TokenValidityDuration)

	return &testEnv{handler: srv.Engine(), userRepo: userRepo, photoRepo: photoRepo}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decodeBody(t, rec)["message"].(string)
	return msg
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == accessTokenCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", accessTokenCookie)
	return nil
}

func (e *testEnv) signUpAndIn(t *testing.T, username, email string) (map[string]any, *http.Cookie) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/sign-up", map[string]string{
		"name":            "Elon Musk",
		"username":        username,
		"email":           email,
		"password":        "password",
		"confirmPassword": "password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email":    email,
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	return decodeBody(t, rec), sessionCookie(t, rec)
}

// --- sign-up ---

func TestSignUp_MissingFieldsRejected(t *testing.T) {
	env := newTestEnv(t)

	payloads := []map[string]string{
		{"email": "elonmusk@email.com", "password": "password", "confirmPassword": "password"},
		{"username": "elonmusk", "password": "password", "confirmPassword": "password"},
		{"username": "elonmusk", "email": "elonmusk@email.com", "confirmPassword": "password"},
		{"username": "elonmusk", "email": "elonmusk@email.com", "password": "password"},
	}

	for _, payload := range payloads {
		rec := env.do(t, http.MethodPost, "/api/auth/sign-up", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please fill in all fields", message(t, rec))
	}
	assert.Empty(t, env.userRepo.users)
}

func TestSignUp_DuplicateRejected(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"name":            "Elon Musk",
		"username":        "elonmusk",
		"email":           "elonmusk@email.com",
		"password":        "password",
		"confirmPassword": "password",
	}

	rec := env.do(t, http.MethodPost, "/api/auth/sign-up", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User created successfully", message(t, rec))

	rec = env.do(t, http.MethodPost, "/api/auth/sign-up", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username or email already in use", message(t, rec))
	assert.Len(t, env.userRepo.users, 1)
}

func TestSignUp_PasswordMismatchRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/sign-up", map[string]string{
		"username":        "elonmusk",
		"email":           "elonmusk@email.com",
		"password":        "passwordd",
		"confirmPassword": "password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Passwords do not match", message(t, rec))
	assert.Empty(t, env.userRepo.users)
}

// --- sign-in ---

func TestSignIn_SuccessSetsCookieAndHidesPassword(t *testing.T) {
	env := newTestEnv(t)

	body, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")

	assert.NotContains(t, body, "password")
	assert.Equal(t, "elonmusk", body["username"])
	assert.NotEmpty(t, body["name"])

	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), float64(cookie.MaxAge), 1)
}

func TestSignIn_FailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")

	unknown := env.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email":    "musk@email.com",
		"password": "password",
	})
	wrongPw := env.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email":    "elonmusk@email.com",
		"password": "passwordd",
	})

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrongPw.Code)
	assert.Equal(t, "Invalid credentials", message(t, unknown))
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestSignIn_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{"email": "elonmusk@email.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please fill in all fields", message(t, rec))
}

// --- google ---

func TestGoogle_MissingEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/google", map[string]string{"name": "Elon Musk"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "it was not possible to login with Google's account", message(t, rec))
}

func TestGoogle_FirstCallCreatesSecondSignsIn(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"name":      "Elon Musk",
		"email":     "elonmusk@email.com",
		"avatarUrl": "https://avatar.com",
	}

	rec := env.do(t, http.MethodPost, "/api/auth/google", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "username")
	assert.NotContains(t, body, "password")
	sessionCookie(t, rec)
	assert.Len(t, env.userRepo.users, 1)

	rec = env.do(t, http.MethodPost, "/api/auth/google", payload)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "username")
	assert.Len(t, env.userRepo.users, 1)
}

// --- sign-out ---

func TestSignOut_ClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/sign-out", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// --- auth middleware ---

func TestProtectedRoutes_MissingTokenIs401BeforeStorage(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/users/664d2b64c52cf14f81ef88b6/update"},
		{http.MethodDelete, "/api/users/664d2b64c52cf14f81ef88b6/delete"},
		{http.MethodPost, "/api/photos/create"},
		{http.MethodPost, "/api/photos/upload-url"},
		{http.MethodPut, "/api/photos/664d2b64c52cf14f81ef88b6"},
		{http.MethodDelete, "/api/photos/664d2b64c52cf14f81ef88b6"},
	}

	for _, r := range routes {
		rec := env.do(t, r.method, r.path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.method, r.path)
		assert.Equal(t, "You are not authenticated", message(t, rec))
	}

	// rejected before any storage access
	assert.Zero(t, env.userRepo.calls)
	assert.Zero(t, env.photoRepo.calls)
}

func TestProtectedRoutes_InvalidTokenIs403(t *testing.T) {
	env := newTestEnv(t)

	bad := &http.Cookie{Name: accessTokenCookie, Value: "not.a.jwt"}
	rec := env.do(t, http.MethodPost, "/api/photos/create", nil, bad)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token", message(t, rec))
	assert.Zero(t, env.photoRepo.calls)
}

// --- users ---

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	body, _ := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	id := body["_id"].(string)

	rec := env.do(t, http.MethodGet, "/api/users/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "elonmusk", got["username"])
	assert.NotContains(t, got, "password")

	rec = env.do(t, http.MethodGet, "/api/users/664d2b64c52cf14f81ef88b6", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", message(t, rec))
}

func TestUpdateUser_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	bodyA, cookieA := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	_, cookieB := env.signUpAndIn(t, "jeffbezos", "jeffbezos@email.com")
	idA := bodyA["_id"].(string)

	payload := map[string]string{"username": "elonmusk", "email": "elonmusk@email.com", "name": "E. Musk"}

	rec := env.do(t, http.MethodPut, "/api/users/"+idA+"/update", payload, cookieB)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only update your own account", message(t, rec))

	rec = env.do(t, http.MethodPut, "/api/users/"+idA+"/update", payload, cookieA)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E. Musk", decodeBody(t, rec)["name"])
}

func TestUpdateUser_TakenUsernameAndEmail(t *testing.T) {
	env := newTestEnv(t)
	bodyA, cookieA := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	env.signUpAndIn(t, "jeffbezos", "jeffbezos@email.com")
	idA := bodyA["_id"].(string)

	rec := env.do(t, http.MethodPut, "/api/users/"+idA+"/update", map[string]string{
		"username": "jeffbezos",
		"email":    "elonmusk@email.com",
	}, cookieA)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already in use", message(t, rec))

	rec = env.do(t, http.MethodPut, "/api/users/"+idA+"/update", map[string]string{
		"username": "elonmusk",
		"email":    "jeffbezos@email.com",
	}, cookieA)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already in use", message(t, rec))
}

func TestUpdateUser_OmittedNamePreserved(t *testing.T) {
	env := newTestEnv(t)
	body, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	id := body["_id"].(string)

	rec := env.do(t, http.MethodPut, "/api/users/"+id+"/update", map[string]string{
		"username": "elonmusk",
		"email":    "elonmusk@email.com",
	}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Elon Musk", decodeBody(t, rec)["name"])
}

func TestDeleteUser_RemovesAccount(t *testing.T) {
	env := newTestEnv(t)
	body, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	id := body["_id"].(string)

	rec := env.do(t, http.MethodDelete, "/api/users/"+id+"/delete", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", message(t, rec))
	assert.Negative(t, sessionCookie(t, rec).MaxAge)

	rec = env.do(t, http.MethodGet, "/api/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_RemovesOwnedPhotos(t *testing.T) {
	env := newTestEnv(t)
	body, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	id := body["_id"].(string)

	rec := env.do(t, http.MethodPost, "/api/photos/create", map[string]string{
		"image_url": "https://www.example.com/image.jpg",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/users/"+id+"/delete", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, env.photoRepo.photos)
}

// --- photos ---

func TestPhotos_ListAndGet(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")

	rec := env.do(t, http.MethodGet, "/api/photos", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/photos/664d2b64c52cf14f81ef88b6", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Photo not found", message(t, rec))

	rec = env.do(t, http.MethodPost, "/api/photos/create", map[string]string{
		"image_url": "https://www.example.com/image.jpg",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, "https://www.example.com/image.jpg", created["image_url"])

	rec = env.do(t, http.MethodGet, "/api/photos/"+created["_id"].(string), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://www.example.com/image.jpg", decodeBody(t, rec)["image_url"])
}

func TestCreatePhoto_RequiresImageURL(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")

	rec := env.do(t, http.MethodPost, "/api/photos/create", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Image_url is required", message(t, rec))
}

func TestCreatePhoto_RejectsForeignOwnerClaim(t *testing.T) {
	env := newTestEnv(t)
	_, cookieA := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	bodyB, _ := env.signUpAndIn(t, "jeffbezos", "jeffbezos@email.com")

	rec := env.do(t, http.MethodPost, "/api/photos/create", map[string]string{
		"image_url": "https://www.example.com/image.jpg",
		"user":      bodyB["_id"].(string),
	}, cookieA)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only create photos for your own account", message(t, rec))
}

func TestPhotoMutations_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	_, cookieA := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	_, cookieB := env.signUpAndIn(t, "jeffbezos", "jeffbezos@email.com")

	rec := env.do(t, http.MethodPost, "/api/photos/create", map[string]string{
		"title":     "a photo",
		"image_url": "https://www.example.com/image.jpg",
	}, cookieA)
	require.Equal(t, http.StatusCreated, rec.Code)
	photoID := decodeBody(t, rec)["_id"].(string)

	rec = env.do(t, http.MethodPut, "/api/photos/"+photoID, map[string]string{"title": "hijacked"}, cookieB)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only update your own photos", message(t, rec))

	rec = env.do(t, http.MethodDelete, "/api/photos/"+photoID, nil, cookieB)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only delete your own photos", message(t, rec))

	rec = env.do(t, http.MethodPut, "/api/photos/"+photoID, map[string]string{"title": "renamed"}, cookieA)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", decodeBody(t, rec)["title"])

	rec = env.do(t, http.MethodDelete, "/api/photos/"+photoID, nil, cookieA)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdatePhoto_OmittedFieldsPreserved(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")

	rec := env.do(t, http.MethodPost, "/api/photos/create", map[string]string{
		"title":       "a photo",
		"description": "taken at dawn",
		"image_url":   "https://www.example.com/image.jpg",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	photoID := decodeBody(t, rec)["_id"].(string)

	rec = env.do(t, http.MethodPut, "/api/photos/"+photoID, map[string]string{"title": "renamed"}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "renamed", got["title"])
	assert.Equal(t, "taken at dawn", got["description"])
}

func TestListPhotos_SetIndependentOfCreationOrder(t *testing.T) {
	env := newTestEnv(t)
	_, cookieA := env.signUpAndIn(t, "elonmusk", "elonmusk@email.com")
	_, cookieB := env.signUpAndIn(t, "jeffbezos", "jeffbezos@email.com")

	// interleaved creations by unrelated accounts
	want := map[string]bool{}
	for i, cookie := range []*http.Cookie{cookieA, cookieB, cookieA, cookieB} {
		rec := env.do(t, http.MethodPost, "/api/photos/create", map[string]string{
			"image_url": "https://www.example.com/image.jpg",
			"title":     string(rune('a' + i)),
		}, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
		want[decodeBody(t, rec)["_id"].(string)] = true
	}

	listIDs := func() map[string]bool {
		rec := env.do(t, http.MethodGet, "/api/photos", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		ids := map[string]bool{}
		for _, p := range list {
			ids[p["_id"].(string)] = true
		}
		return ids
	}

	first := listIDs()
	second := listIDs()
	assert.Equal(t, want, first)
	assert.Equal(t, first, second)
}
