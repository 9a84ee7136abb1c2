package review

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	CreateStoreReview(ctx context.Context, params SubmitStoreReviewParams) (*StoreReview, error)
	ListStoreReviews(ctx context.Context, storeID uint) ([]*StoreReview, error)
	CreateCourierReview(ctx context.Context, params SubmitCourierReviewParams) (*CourierReview, error)
	ListCourierReviews(ctx context.Context, courierID uint) ([]*CourierReview, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateStoreReview(ctx context.Context, params SubmitStoreReviewParams) (*StoreReview, error) {
	query := `
		INSERT INTO store_reviews (client_id, store_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_date
	`

	rv := &StoreReview{
		ClientID: params.ClientID,
		StoreID:  params.StoreID,
		Rating:   params.Rating,
		Comment:  params.Comment,
	}

	err := r.db.QueryRowContext(ctx, query,
		params.ClientID, params.StoreID, params.Rating, params.Comment,
	).Scan(&rv.ID, &rv.CreatedDate)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgForeignKeyViolation {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	return rv, nil
}

func (r *repository) ListStoreReviews(ctx context.Context, storeID uint) ([]*StoreReview, error) {
	query := `
		SELECT id, client_id, store_id, rating, comment, created_date
		FROM store_reviews
		WHERE store_id = $1
		ORDER BY created_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*StoreReview
	for rows.Next() {
		var rv StoreReview
		if err := rows.Scan(
			&rv.ID, &rv.ClientID, &rv.StoreID, &rv.Rating, &rv.Comment, &rv.CreatedDate,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}

	return reviews, rows.Err()
}

func (r *repository) CreateCourierReview(ctx context.Context, params SubmitCourierReviewParams) (*CourierReview, error) {
	query := `
		INSERT INTO courier_reviews (client_id, courier_id, rating)
		VALUES ($1, $2, $3)
		RETURNING id, created_date
	`

	rv := &CourierReview{
		ClientID:  params.ClientID,
		CourierID: params.CourierID,
		Rating:    params.Rating,
	}

	err := r.db.QueryRowContext(ctx, query,
		params.ClientID, params.CourierID, params.Rating,
	).Scan(&rv.ID, &rv.CreatedDate)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgForeignKeyViolation {
		return nil, ErrCourierNotFound
	}
	if err != nil {
		return nil, err
	}

	return rv, nil
}

func (r *repository) ListCourierReviews(ctx context.Context, courierID uint) ([]*CourierReview, error) {
	query := `
		SELECT id, client_id, courier_id, rating, created_date
		FROM courier_reviews
		WHERE courier_id = $1
		ORDER BY created_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courierID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*CourierReview
	for rows.Next() {
		var rv CourierReview
		if err := rows.Scan(
			&rv.ID, &rv.ClientID, &rv.CourierID, &rv.Rating, &rv.CreatedDate,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}

	return reviews, rows.Err()
}
