package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mealdash-be/internal/courier"
	"mealdash-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetOrder(ctx context.Context, id uint) (*Order, error)
	ListOrders(ctx context.Context, params ListParams) ([]*Order, error)

	// CreateOrderTx inserts the order and its item snapshots and clears the
	// source cart, all in one transaction.
	CreateOrderTx(ctx context.Context, params CreateOrderParams) (*Order, error)

	// AssignCourierTx pins the courier to the order and marks them busy.
	AssignCourierTx(ctx context.Context, orderID, courierID uint) error

	// UpdateStatusTx persists the new status and, when releaseCourierID is
	// set, frees that courier in the same transaction.
	UpdateStatusTx(ctx context.Context, orderID uint, status Status, releaseCourierID *uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	o.id,
	o.client_id,
	o.courier_id,
	o.status,
	o.delivery_address,
	o.total_price,
	o.created_date
`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.CourierID,
		&o.Status,
		&o.DeliveryAddress,
		&o.TotalPrice,
		&o.CreatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetOrder(ctx context.Context, id uint) (*Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders o WHERE o.id = $1`, orderColumns)

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.getOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (r *repository) getOrderItems(ctx context.Context, orderID uint) ([]OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, unit_price, quantity, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.ProductID,
			&it.ProductName,
			&it.UnitPrice,
			&it.Quantity,
			&it.Subtotal,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) ListOrders(ctx context.Context, params ListParams) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := int32(20)
	if params.Limit != nil && *params.Limit > 0 {
		finalLimit = *params.Limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if params.Page != nil && *params.Page > 0 {
		finalPage = *params.Page
	}

	offset := (finalPage - 1) * finalLimit

	// ---------- where ----------
	where := []string{}
	args := []any{}

	if params.ClientID != nil {
		where = append(where, fmt.Sprintf("o.client_id = $%d", len(args)+1))
		args = append(args, *params.ClientID)
	}
	if params.Status != nil {
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)+1))
		args = append(args, *params.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM orders o`, orderColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY o.created_date DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2)
	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("orders listed",
		zap.Int("count", len(orders)),
		zap.Duration("took", time.Since(start)),
	)

	return orders, nil
}

// snapshotRow is one cart line joined with its product, as captured at
// order creation.
type snapshotRow struct {
	ProductID   uint
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func (r *repository) CreateOrderTx(ctx context.Context, params CreateOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Uint("client_id", params.ClientID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var snapshots []snapshotRow
	total := decimal.Zero

	if params.CartID != nil {
		// Only the cart's owner may place an order from it.
		var ownerID uint
		err = tx.QueryRowContext(ctx,
			`SELECT user_id FROM carts WHERE id = $1`, *params.CartID,
		).Scan(&ownerID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		if err != nil {
			return nil, err
		}
		if ownerID != params.ClientID {
			return nil, ErrCartNotFound
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT ci.product_id, p.name, p.price, ci.quantity
			FROM cart_items ci
			JOIN products p ON p.id = ci.product_id
			WHERE ci.cart_id = $1
			ORDER BY ci.id
		`, *params.CartID)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			var s snapshotRow
			if err := rows.Scan(&s.ProductID, &s.ProductName, &s.UnitPrice, &s.Quantity); err != nil {
				rows.Close()
				return nil, err
			}
			snapshots = append(snapshots, s)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()

		if len(snapshots) == 0 {
			return nil, ErrCartEmpty
		}

		for _, s := range snapshots {
			total = total.Add(s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
		}
	}

	o := &Order{
		ClientID:        params.ClientID,
		Status:          StatusPending,
		DeliveryAddress: params.DeliveryAddress,
		TotalPrice:      total,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (client_id, status, delivery_address, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_date
	`,
		o.ClientID,
		o.Status,
		o.DeliveryAddress,
		o.TotalPrice.String(),
	).Scan(&o.ID, &o.CreatedDate)
	if err != nil {
		return nil, err
	}

	for _, s := range snapshots {
		subtotal := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))

		var it OrderItem
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
			o.ID,
			s.ProductID,
			s.ProductName,
			s.UnitPrice.String(),
			s.Quantity,
			subtotal.String(),
		).Scan(&it.ID)
		if err != nil {
			return nil, err
		}

		it.OrderID = o.ID
		it.ProductID = s.ProductID
		it.ProductName = s.ProductName
		it.UnitPrice = s.UnitPrice
		it.Quantity = s.Quantity
		it.Subtotal = subtotal
		o.Items = append(o.Items, it)
	}

	if params.CartID != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1`, *params.CartID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Int("items", len(o.Items)),
		zap.String("total_price", o.TotalPrice.String()),
	)

	return o, nil
}

func (r *repository) AssignCourierTx(ctx context.Context, orderID, courierID uint) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the order row so a concurrent reassignment cannot strand a courier.
	var prev *uint
	err = tx.QueryRowContext(ctx,
		`SELECT courier_id FROM orders WHERE id = $1 FOR UPDATE`, orderID,
	).Scan(&prev)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	// Reassignment frees the courier that was pinned before.
	if prev != nil && *prev != courierID {
		_, err = tx.ExecContext(ctx,
			`UPDATE couriers SET type = $1, current_order_id = NULL WHERE id = $2`,
			courier.TypeAvailable, *prev,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET courier_id = $1 WHERE id = $2`,
		courierID, orderID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE couriers SET type = $1, current_order_id = $2 WHERE id = $3`,
		courier.TypeBusy, orderID, courierID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) UpdateStatusTx(ctx context.Context, orderID uint, status Status, releaseCourierID *uint) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status, orderID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrOrderNotFound
	}

	if releaseCourierID != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE couriers SET type = $1, current_order_id = NULL WHERE id = $2`,
			courier.TypeAvailable, *releaseCourierID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
