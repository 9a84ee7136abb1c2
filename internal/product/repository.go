package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"mealdash-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	SearchProducts(ctx context.Context, params SearchParams) ([]*Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	GetCombos(ctx context.Context, storeID *uint) ([]*Combo, error)
	GetCombo(ctx context.Context, id uint) (*Combo, error)
	CreateCombo(ctx context.Context, params CreateComboParams) (*Combo, error)
	DeleteCombo(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id,
	p.name,
	p.image,
	p.price,
	p.description,
	p.store_id
`

func scanProduct(row *sql.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Image,
		&p.Price,
		&p.Description,
		&p.StoreID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) SearchProducts(ctx context.Context, params SearchParams) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SearchProducts"),
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

	if params.Name != nil && *params.Name != "" {
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*params.Name+"%")
	}
	if params.StoreID != nil {
		where = append(where, fmt.Sprintf("p.store_id = $%d", len(args)+1))
		args = append(args, *params.StoreID)
	}
	if params.MinPrice != nil {
		where = append(where, fmt.Sprintf("p.price >= $%d", len(args)+1))
		args = append(args, params.MinPrice.String())
	}
	if params.MaxPrice != nil {
		where = append(where, fmt.Sprintf("p.price <= $%d", len(args)+1))
		args = append(args, params.MaxPrice.String())
	}

	query := `SELECT ` + productColumns + ` FROM products p`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.name ASC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	products := make([]*Product, 0, finalLimit)
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Image,
			&p.Price,
			&p.Description,
			&p.StoreID,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *repository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	query := `
	INSERT INTO products (name, image, price, description, store_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, name, image, price, description, store_id
	`
	return scanProduct(r.db.QueryRowContext(
		ctx,
		query,
		params.Name,
		params.Image,
		params.Price.String(),
		params.Description,
		params.StoreID,
	))
}

func (r *repository) UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error) {
	query := `
	UPDATE products
	SET name = $1,
	    image = $2,
	    price = $3,
	    description = $4
	WHERE id = $5
	RETURNING id, name, image, price, description, store_id
	`
	return scanProduct(r.db.QueryRowContext(
		ctx,
		query,
		params.Name,
		params.Image,
		params.Price.String(),
		params.Description,
		params.ProductID,
	))
}

func (r *repository) DeleteProduct(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) GetCombos(ctx context.Context, storeID *uint) ([]*Combo, error) {
	query := `
	SELECT id, name, image, price, description, store_id
	FROM product_combos
	`
	args := []any{}
	if storeID != nil {
		query += ` WHERE store_id = $1`
		args = append(args, *storeID)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	combos := []*Combo{}
	for rows.Next() {
		c := &Combo{}
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Image,
			&c.Price,
			&c.Description,
			&c.StoreID,
		); err != nil {
			return nil, err
		}
		combos = append(combos, c)
	}

	return combos, rows.Err()
}

func (r *repository) GetCombo(ctx context.Context, id uint) (*Combo, error) {
	c := &Combo{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, image, price, description, store_id
		FROM product_combos
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Image, &c.Price, &c.Description, &c.StoreID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repository) CreateCombo(ctx context.Context, params CreateComboParams) (*Combo, error) {
	c := &Combo{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO product_combos (name, image, price, description, store_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, image, price, description, store_id
	`,
		params.Name,
		params.Image,
		params.Price.String(),
		params.Description,
		params.StoreID,
	).Scan(&c.ID, &c.Name, &c.Image, &c.Price, &c.Description, &c.StoreID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrComboNameTaken
		}
		return nil, err
	}
	return c, nil
}

func (r *repository) DeleteCombo(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product_combos WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrComboNotFound
	}

	return nil
}
