package services

import (
	"context"
	"errors"
	"strings"

	"clean-backend/internal/auth"
	"clean-backend/internal/cache"
	"clean-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// ErrInvalidCredentials covers both unknown username and wrong password so
// login failures stay indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type userStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type UserService struct {
	users      userStore
	jwtManager *auth.JWTManager
}

func NewUserService(users userStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{users: users, jwtManager: jwtManager}
}

// Login verifies credentials and issues a JWT. Valid credentials are
// cached in Redis to skip the bcrypt compare on repeated logins.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, NewValidationError("username dan password wajib diisi")
	}

	if userID, ok := cache.GetCachedAuth(ctx, username, req.Password); ok {
		user, err := s.users.GetByID(ctx, userID)
		if err == nil {
			return s.issueToken(user)
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	cache.CacheAuth(ctx, username, req.Password, user.ID)
	return s.issueToken(user)
}

// CreateUser registers a new account with a hashed password
func (s *UserService) CreateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username wajib diisi")
	}
	if len(password) < 6 {
		return nil, NewValidationError("password minimal 6 karakter")
	}
	if role == "" {
		role = "supervisor"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: hash, Role: role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Success: true,
		Message: "Login berhasil",
		Token:   token,
		User:    user,
	}, nil
}
