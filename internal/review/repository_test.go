package review

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateStoreReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO store_reviews").
			WithArgs(uint(7), uint(2), 4, "tasty").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_date"}).
				AddRow(1, time.Now()))

		rv, err := repo.CreateStoreReview(ctx, SubmitStoreReviewParams{
			ClientID: 7, StoreID: 2, Rating: 4, Comment: "tasty",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), rv.ID)
		assert.Equal(t, 4, rv.Rating)
	})

	t.Run("UnknownStoreMapsToNotFound", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO store_reviews").
			WithArgs(uint(7), uint(99), 4, "").
			WillReturnError(&pq.Error{Code: pq.ErrorCode(PgForeignKeyViolation)})

		_, err := repo.CreateStoreReview(ctx, SubmitStoreReviewParams{
			ClientID: 7, StoreID: 99, Rating: 4,
		})
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestRepository_CreateCourierReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO courier_reviews").
			WithArgs(uint(7), uint(4), 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_date"}).
				AddRow(1, time.Now()))

		rv, err := repo.CreateCourierReview(ctx, SubmitCourierReviewParams{
			ClientID: 7, CourierID: 4, Rating: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, rv.Rating)
	})

	t.Run("UnknownCourierMapsToNotFound", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO courier_reviews").
			WithArgs(uint(7), uint(99), 5).
			WillReturnError(&pq.Error{Code: pq.ErrorCode(PgForeignKeyViolation)})

		_, err := repo.CreateCourierReview(ctx, SubmitCourierReviewParams{
			ClientID: 7, CourierID: 99, Rating: 5,
		})
		assert.ErrorIs(t, err, ErrCourierNotFound)
	})
}

func TestRepository_ListStoreReviews(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id, client_id, store_id, rating, comment, created_date").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_id", "store_id", "rating", "comment", "created_date",
		}).
			AddRow(2, 8, 2, 3, "ok", time.Now()).
			AddRow(1, 7, 2, 5, "fast", time.Now()))

	reviews, err := repo.ListStoreReviews(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 3, reviews[0].Rating)
}
