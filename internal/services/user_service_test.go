package services

import (
	"context"
	"testing"

	"clean-backend/internal/auth"
	"clean-backend/internal/config"
	"clean-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	byUsername map[string]*models.User
	byID       map[int]*models.User
	nextID     int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byUsername: make(map[string]*models.User),
		byID:       make(map[int]*models.User),
		nextID:     1,
	}
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	return nil
}

func testUserService(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "clean-backend"

	store := newFakeUserStore()
	return NewUserService(store, auth.NewJWTManager(cfg)), store
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := testUserService(t)

	_, err := svc.CreateUser(context.Background(), "admin", "rahasia1", "admin")
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "rahasia1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testUserService(t)

	_, err := svc.CreateUser(context.Background(), "admin", "rahasia1", "admin")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "salah",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := testUserService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, store := testUserService(t)

	user, err := svc.CreateUser(context.Background(), "siti", "rahasia1", "")
	require.NoError(t, err)
	assert.Equal(t, "supervisor", user.Role)

	stored := store.byUsername["siti"]
	assert.NotEqual(t, "rahasia1", stored.Password)
	assert.True(t, auth.VerifyPassword(stored.Password, "rahasia1"))
}

func TestCreateUserShortPassword(t *testing.T) {
	svc, _ := testUserService(t)

	_, err := svc.CreateUser(context.Background(), "siti", "abc", "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
