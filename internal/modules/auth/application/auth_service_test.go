package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/auth/domain"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/auth/infrastructure/jwt"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	req := RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test User",
		Phone:    "+123",
	}

	repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.NotZero(t, user.ID)
	require.NotNil(t, user.AvatarUrl)
	assert.Contains(t, *user.AvatarUrl, "dicebear")
	assert.Contains(t, *user.AvatarUrl, "test%40example.com")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	repo.AssertExpectations(t)
}

func TestRegister_InvalidInput(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Password: "password123",
		Name:     "Test",
	})
	assert.EqualError(t, err, "email is required")

	_, err = svc.Register(ctx, RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	assert.EqualError(t, err, "name is required")

	_, err = svc.Register(ctx, RegisterRequest{
		Email:    "test@example.com",
		Password: "short",
		Name:     "Test",
	})
	assert.EqualError(t, err, "password must be at least 8 characters")

	_, err = svc.Register(ctx, RegisterRequest{
		Email:    "invalid-email",
		Password: "password123",
		Name:     "Test",
	})
	assert.EqualError(t, err, "invalid email format")
}

func TestRegister_RepoError(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrUserAlreadyExists).Once()

	_, err := svc.Register(ctx, RegisterRequest{
		Email:    "dup@example.com",
		Password: "password123",
		Name:     "Test",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewAuthService(repo, "secret", time.Hour)
		_, err := svc.Login(ctx, LoginRequest{})
		assert.EqualError(t, err, "missing email or password")
	})

	t.Run("user not found maps to invalid credentials", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewAuthService(repo, "secret", time.Hour)
		repo.On("GetByEmail", ctx, "missing@example.com").Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.Login(ctx, LoginRequest{Email: "missing@example.com", Password: "password123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewAuthService(repo, "secret", time.Hour)

		hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
		require.NoError(t, err)
		repo.On("GetByEmail", ctx, "user@example.com").Return(&domain.User{
			ID:           uuid.New(),
			Email:        "user@example.com",
			PasswordHash: string(hash),
		}, nil).Once()

		_, err = svc.Login(ctx, LoginRequest{Email: "user@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("success returns a token with identity claims", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewAuthService(repo, "secret", time.Hour)

		userID := uuid.New()
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		require.NoError(t, err)
		repo.On("GetByEmail", ctx, "user@example.com").Return(&domain.User{
			ID:           userID,
			Email:        "user@example.com",
			Name:         "Alice",
			PasswordHash: string(hash),
		}, nil).Once()

		token, err := svc.Login(ctx, LoginRequest{Email: "user@example.com", Password: "password123"})
		require.NoError(t, err)

		claims, err := jwt.ValidateToken(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "Alice", claims.Name)
	})
}

func TestGetUser(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	userID := uuid.New()
	repo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "u@example.com"}, nil).Once()

	user, err := svc.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}
