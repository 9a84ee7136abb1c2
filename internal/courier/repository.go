package courier

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type Repository interface {
	GetCourier(ctx context.Context, id uint) (*Courier, error)
	GetByUserID(ctx context.Context, userID uint) (*Courier, error)
	ListCouriers(ctx context.Context, onlyAvailable bool) ([]*Courier, error)
	CreateCourier(ctx context.Context, userID uint) (*Courier, error)
	SetType(ctx context.Context, id uint, t Type) error
	DeleteCourier(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanCourier(row *sql.Row) (*Courier, error) {
	c := &Courier{}
	err := row.Scan(&c.ID, &c.UserID, &c.CurrentOrderID, &c.Type)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repository) GetCourier(ctx context.Context, id uint) (*Courier, error) {
	return scanCourier(r.db.QueryRowContext(ctx, `
		SELECT id, user_id, current_order_id, type
		FROM couriers
		WHERE id = $1
	`, id))
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) (*Courier, error) {
	return scanCourier(r.db.QueryRowContext(ctx, `
		SELECT id, user_id, current_order_id, type
		FROM couriers
		WHERE user_id = $1
	`, userID))
}

func (r *repository) ListCouriers(ctx context.Context, onlyAvailable bool) ([]*Courier, error) {
	query := `
		SELECT id, user_id, current_order_id, type
		FROM couriers
	`
	args := []any{}
	if onlyAvailable {
		query += ` WHERE type = $1`
		args = append(args, TypeAvailable)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := []*Courier{}
	for rows.Next() {
		c := &Courier{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.CurrentOrderID, &c.Type); err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, rows.Err()
}

func (r *repository) CreateCourier(ctx context.Context, userID uint) (*Courier, error) {
	c := &Courier{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO couriers (user_id, type)
		VALUES ($1, $2)
		RETURNING id, user_id, current_order_id, type
	`, userID, TypeAvailable).Scan(&c.ID, &c.UserID, &c.CurrentOrderID, &c.Type)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrAlreadyCourier
		}
		return nil, err
	}
	return c, nil
}

func (r *repository) SetType(ctx context.Context, id uint, t Type) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE couriers SET type = $1 WHERE id = $2
	`, t, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCourierNotFound
	}

	return nil
}

func (r *repository) DeleteCourier(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM couriers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCourierNotFound
	}

	return nil
}
