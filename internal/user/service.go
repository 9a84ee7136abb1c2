package user

import (
	"context"

	"mealdash-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, *TokenPair, error)
	Login(ctx context.Context, username, password string) (*User, *TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, *TokenPair, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("username", params.Username),
	)

	if params.Username == "" {
		return nil, nil, ErrMissingUsername
	}
	if params.Password == "" {
		return nil, nil, ErrMissingPassword
	}

	if params.Role == "" {
		params.Role = RoleClient
	}
	if !ValidRole(params.Role) {
		return nil, nil, ErrInvalidRole
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, nil, err
	}

	u, err := s.repo.CreateUser(ctx, params, hashed)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	log.Info("register completed", zap.Uint("user_id", u.ID))
	return u, pair, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, *TokenPair, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		log.Info("login failed, unknown username")
		return nil, nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.HashedPassword) {
		log.Info("login failed, password mismatch", zap.Uint("user_id", u.ID))
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	log.Info("login completed", zap.Uint("user_id", u.ID))
	return u, pair, nil
}

func (s *service) issueTokens(ctx context.Context, u *User) (*TokenPair, error) {
	access, err := GenerateAccessToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	refresh, err := GenerateRefreshToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveRefreshToken(ctx, refresh, u.ID); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	return s.repo.DeleteRefreshToken(ctx, refreshToken)
}

// Refresh exchanges a stored refresh token for a fresh access token.
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	stored, err := s.repo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if stored == nil {
		return "", ErrRefreshTokenNotFound
	}

	u, err := s.repo.GetByID(ctx, stored.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	return GenerateAccessToken(u.ID, u.Username, string(u.Role))
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	u, err := s.repo.UpdateProfile(ctx, params)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.DeleteUser(ctx, id)
}
