package user

import (
	"context"
	"errors"
	"testing"

	"mealdash-be/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, params RegisterParams, hashedPassword string) (*User, error) {
	args := m.Called(ctx, params, hashedPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) SaveRefreshToken(ctx context.Context, token string, userID uint) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockRepository) GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RefreshToken), args.Error(1)
}

func (m *MockRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		created := &User{ID: 1, Username: "aida", Role: RoleClient}
		repo.On("CreateUser", ctx, mock.AnythingOfType("RegisterParams"), mock.AnythingOfType("string")).
			Return(created, nil)
		repo.On("SaveRefreshToken", ctx, mock.AnythingOfType("string"), uint(1)).
			Return(nil)

		u, pair, err := svc.Register(ctx, RegisterParams{
			FirstName: "Aida",
			LastName:  "Bekova",
			Username:  "aida",
			Password:  "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, created, u)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		repo.AssertExpectations(t)
	})

	t.Run("DefaultsToClientRole", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CreateUser", ctx, mock.MatchedBy(func(p RegisterParams) bool {
			return p.Role == RoleClient
		}), mock.AnythingOfType("string")).
			Return(&User{ID: 2, Username: "bek", Role: RoleClient}, nil)
		repo.On("SaveRefreshToken", ctx, mock.Anything, uint(2)).Return(nil)

		_, _, err := svc.Register(ctx, RegisterParams{Username: "bek", Password: "pw123456"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, _, err := svc.Register(ctx, RegisterParams{
			Username: "aida", Password: "pw", Role: Role("superuser"),
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("MissingUsername", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, _, err := svc.Register(ctx, RegisterParams{Password: "pw"})
		assert.ErrorIs(t, err, ErrMissingUsername)
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CreateUser", ctx, mock.Anything, mock.Anything).
			Return(nil, ErrUsernameTaken)

		_, _, err := svc.Register(ctx, RegisterParams{Username: "aida", Password: "pw"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
		assert.True(t, apperr.IsConflict(err))
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByUsername", ctx, "aida").
			Return(&User{ID: 1, Username: "aida", HashedPassword: hash, Role: RoleClient}, nil)
		repo.On("SaveRefreshToken", ctx, mock.Anything, uint(1)).Return(nil)

		u, pair, err := svc.Login(ctx, "aida", "secret123")
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)

		claims, err := ParseJWT(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, "client", claims.Role)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByUsername", ctx, "ghost").Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByUsername", ctx, "aida").
			Return(&User{ID: 1, Username: "aida", HashedPassword: hash}, nil)

		_, _, err := svc.Login(ctx, "aida", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetRefreshToken", ctx, "tok-1").
			Return(&RefreshToken{ID: 1, Token: "tok-1", UserID: 7}, nil)
		repo.On("GetByID", ctx, uint(7)).
			Return(&User{ID: 7, Username: "aida", Role: RoleClient}, nil)

		access, err := svc.Refresh(ctx, "tok-1")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetRefreshToken", ctx, "gone").Return(nil, nil)

		_, err := svc.Refresh(ctx, "gone")
		assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetRefreshToken", ctx, "tok-1").Return(nil, errors.New("db error"))

		_, err := svc.Refresh(ctx, "tok-1")
		assert.Error(t, err)
	})
}

func TestService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, uint(99)).Return(nil, nil)

		_, err := svc.GetUser(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
