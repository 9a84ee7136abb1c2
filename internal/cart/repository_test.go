package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetOrCreateCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("CreatesWhenAbsent", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO carts").
			WithArgs(uint(7)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT id, user_id FROM carts").
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 7))

		c, err := repo.GetOrCreateCart(context.Background(), 7)
		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, uint(3), c.ID)
		assert.Equal(t, uint(7), c.UserID)
	})

	t.Run("ExistingWins", func(t *testing.T) {
		// ON CONFLICT DO NOTHING affects zero rows, re-select returns the old cart.
		mock.ExpectExec("INSERT INTO carts").
			WithArgs(uint(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id, user_id FROM carts").
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 7))

		c, err := repo.GetOrCreateCart(context.Background(), 7)
		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, uint(3), c.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO carts").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetOrCreateCart(context.Background(), 7)
		assert.Error(t, err)
	})
}

func TestRepository_UpsertItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	itemCols := []string{"id", "cart_id", "product_id", "quantity", "created_at", "updated_at"}

	t.Run("Insert", func(t *testing.T) {
		rows := sqlmock.NewRows(itemCols).
			AddRow(1, 3, 5, 2, time.Now(), time.Now())

		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(uint(3), uint(5), 2).
			WillReturnRows(rows)

		item, err := repo.UpsertItem(context.Background(), 3, 5, 2)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("MergeOnConflict", func(t *testing.T) {
		// Same pair again: the statement returns the merged quantity.
		rows := sqlmock.NewRows(itemCols).
			AddRow(1, 3, 5, 5, time.Now(), time.Now())

		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(uint(3), uint(5), 3).
			WillReturnRows(rows)

		item, err := repo.UpsertItem(context.Background(), 3, 5, 3)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO cart_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.UpsertItem(context.Background(), 3, 5, 1)
		assert.Error(t, err)
	})
}

func TestRepository_GetCartRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	cols := []string{
		"cart_id", "user_id",
		"item_id", "product_id", "quantity", "created_at", "updated_at",
		"name", "image", "price", "description", "store_id",
	}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(cols).
			AddRow(3, 7, 1, 5, 2, now, now, "Cheeseburger", nil, "250.00", "Classic", 9).
			AddRow(3, 7, 2, 6, 1, now, now, "Fries", nil, "120.50", "Crispy", 9)

		mock.ExpectQuery("FROM carts c").
			WithArgs(uint(7)).
			WillReturnRows(rows)

		result, err := repo.GetCartRows(context.Background(), 7)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, uint(3), result[0].CartID)
		assert.Equal(t, "Cheeseburger", result[0].ProductName)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("FROM carts c").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetCartRows(context.Background(), 7)
		assert.Error(t, err)
	})
}

func TestRepository_RemoveItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(uint(3), uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveItem(context.Background(), 3, 5))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(uint(3), uint(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveItem(context.Background(), 3, 99)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestRepository_ClearCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("EmptyCartIsFine", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(uint(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.ClearCart(context.Background(), 3))
	})
}
