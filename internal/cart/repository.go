package cart

import (
	"context"
	"database/sql"
	"time"

	"mealdash-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartByUserID(ctx context.Context, userID uint) (*Cart, error)
	GetOrCreateCart(ctx context.Context, userID uint) (*Cart, error)
	UpsertItem(ctx context.Context, cartID, productID uint, quantity int) (*CartItem, error)
	GetCartRows(ctx context.Context, userID uint) ([]cartRow, error)
	RemoveItem(ctx context.Context, cartID, productID uint) error
	ClearCart(ctx context.Context, cartID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCartByUserID(ctx context.Context, userID uint) (*Cart, error) {
	c := &Cart{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id
		FROM carts
		WHERE user_id = $1
	`, userID).Scan(&c.ID, &c.UserID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetOrCreateCart is the idempotent lazy-create for a user's single cart.
// The unique constraint on user_id makes the insert race-safe: a concurrent
// creator wins, DO NOTHING swallows the conflict, and the re-select returns
// whichever row exists.
func (r *repository) GetOrCreateCart(ctx context.Context, userID uint) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrCreateCart"),
		zap.Uint("user_id", userID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		log.Error("failed to ensure cart", zap.Error(err))
		return nil, err
	}

	return r.GetCartByUserID(ctx, userID)
}

// UpsertItem inserts a cart line or, when the (cart_id, product_id) pair
// already exists, merges the quantities in a single statement.
func (r *repository) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertItem"),
		zap.Uint("cart_id", cartID),
		zap.Uint("product_id", productID),
	)

	query := `
	INSERT INTO cart_items (cart_id, product_id, quantity)
	VALUES ($1, $2, $3)
	ON CONFLICT (cart_id, product_id)
	DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
	              updated_at = NOW()
	RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`

	item := &CartItem{}
	err := r.db.QueryRowContext(ctx, query, cartID, productID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item upserted",
		zap.Uint("cart_item_id", item.ID),
		zap.Int("quantity", item.Quantity),
	)

	return item, nil
}

func (r *repository) GetCartRows(ctx context.Context, userID uint) ([]cartRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartRows"),
		zap.Uint("user_id", userID),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.user_id,

		ci.id,
		ci.product_id,
		ci.quantity,
		ci.created_at,
		ci.updated_at,

		p.name,
		p.image,
		p.price,
		p.description,
		p.store_id
	FROM carts c
	JOIN cart_items ci ON ci.cart_id = c.id
	JOIN products p ON p.id = ci.product_id
	WHERE c.user_id = $1
	ORDER BY ci.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := []cartRow{}
	for rows.Next() {
		var row cartRow
		if err := rows.Scan(
			&row.CartID,
			&row.UserID,

			&row.ItemID,
			&row.ProductID,
			&row.Quantity,
			&row.CreatedAt,
			&row.UpdatedAt,

			&row.ProductName,
			&row.ProductImage,
			&row.Price,
			&row.Description,
			&row.StoreID,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// ClearCart removes every line; clearing an already-empty cart is not an error.
func (r *repository) ClearCart(ctx context.Context, cartID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = $1
	`, cartID)
	return err
}
