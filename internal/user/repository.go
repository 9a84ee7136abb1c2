package user

import (
	"context"
	"database/sql"

	"mealdash-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateUser(ctx context.Context, params RegisterParams, hashedPassword string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)
	DeleteUser(ctx context.Context, id uint) error

	SaveRefreshToken(ctx context.Context, token string, userID uint) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `
	id,
	first_name,
	last_name,
	username,
	hashed_password,
	phone_number,
	role,
	created_at
`

func scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Username,
		&u.HashedPassword,
		&u.PhoneNumber,
		&u.Role,
		&u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) CreateUser(ctx context.Context, params RegisterParams, hashedPassword string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
		zap.String("username", params.Username),
	)

	query := `
	INSERT INTO user_profiles (
		first_name,
		last_name,
		username,
		hashed_password,
		phone_number,
		role
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + userColumns

	row := r.db.QueryRowContext(
		ctx,
		query,
		params.FirstName,
		params.LastName,
		params.Username,
		hashedPassword,
		params.PhoneNumber,
		params.Role,
	)

	u := &User{}
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Username,
		&u.HashedPassword,
		&u.PhoneNumber,
		&u.Role,
		&u.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrUsernameTaken
		}
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Uint("user_id", u.ID))
	return u, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	query := `
	UPDATE user_profiles
	SET first_name = $1,
	    last_name = $2,
	    phone_number = $3
	WHERE id = $4
	RETURNING ` + userColumns

	return scanUser(r.db.QueryRowContext(
		ctx,
		query,
		params.FirstName,
		params.LastName,
		params.PhoneNumber,
		params.UserID,
	))
}

func (r *repository) DeleteUser(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) SaveRefreshToken(ctx context.Context, token string, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO refresh_tokens (token, user_id)
		VALUES ($1, $2)
	`, token, userID)
	return err
}

func (r *repository) GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error) {
	rt := &RefreshToken{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, token, user_id, created_at
		FROM refresh_tokens
		WHERE token = $1
	`, token).Scan(&rt.ID, &rt.Token, &rt.UserID, &rt.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *repository) DeleteRefreshToken(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}

	return nil
}
