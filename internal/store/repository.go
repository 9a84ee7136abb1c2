package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"mealdash-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	SearchStores(ctx context.Context, params SearchParams) ([]*Store, error)
	GetStore(ctx context.Context, id uint) (*Store, error)
	CreateStore(ctx context.Context, params CreateStoreParams) (*Store, error)
	UpdateStore(ctx context.Context, params UpdateStoreParams) (*Store, error)
	DeleteStore(ctx context.Context, id uint) error

	GetContactInfos(ctx context.Context, storeID uint) ([]*ContactInfo, error)
	CreateContactInfo(ctx context.Context, storeID uint, value *string) (*ContactInfo, error)
	UpdateContactInfo(ctx context.Context, id uint, value *string) (*ContactInfo, error)
	DeleteContactInfo(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const storeColumns = `
	s.id,
	s.name,
	s.image,
	s.category_id,
	s.description,
	s.address,
	s.owner_id
`

func (r *repository) SearchStores(ctx context.Context, params SearchParams) ([]*Store, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SearchStores"),
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
		where = append(where, fmt.Sprintf("s.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*params.Name+"%")
	}
	if params.CategoryID != nil {
		where = append(where, fmt.Sprintf("s.category_id = $%d", len(args)+1))
		args = append(args, *params.CategoryID)
	}

	query := `SELECT ` + storeColumns + ` FROM stores s`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY s.name ASC"
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

	stores := make([]*Store, 0, finalLimit)
	for rows.Next() {
		s := &Store{}
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Image,
			&s.CategoryID,
			&s.Description,
			&s.Address,
			&s.OwnerID,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(stores)),
		zap.Duration("duration", time.Since(start)),
	)

	return stores, nil
}

func (r *repository) GetStore(ctx context.Context, id uint) (*Store, error) {
	s := &Store{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores s WHERE s.id = $1`, id,
	).Scan(
		&s.ID,
		&s.Name,
		&s.Image,
		&s.CategoryID,
		&s.Description,
		&s.Address,
		&s.OwnerID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) CreateStore(ctx context.Context, params CreateStoreParams) (*Store, error) {
	s := &Store{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stores (name, image, category_id, description, address, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, image, category_id, description, address, owner_id
	`,
		params.Name,
		params.Image,
		params.CategoryID,
		params.Description,
		params.Address,
		params.OwnerID,
	).Scan(
		&s.ID,
		&s.Name,
		&s.Image,
		&s.CategoryID,
		&s.Description,
		&s.Address,
		&s.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) UpdateStore(ctx context.Context, params UpdateStoreParams) (*Store, error) {
	s := &Store{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE stores
		SET name = $1,
		    image = $2,
		    category_id = $3,
		    description = $4,
		    address = $5
		WHERE id = $6
		RETURNING id, name, image, category_id, description, address, owner_id
	`,
		params.Name,
		params.Image,
		params.CategoryID,
		params.Description,
		params.Address,
		params.StoreID,
	).Scan(
		&s.ID,
		&s.Name,
		&s.Image,
		&s.CategoryID,
		&s.Description,
		&s.Address,
		&s.OwnerID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) DeleteStore(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStoreNotFound
	}

	return nil
}

func (r *repository) GetContactInfos(ctx context.Context, storeID uint) ([]*ContactInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, value, store_id
		FROM contact_infos
		WHERE store_id = $1
		ORDER BY id
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := []*ContactInfo{}
	for rows.Next() {
		ci := &ContactInfo{}
		if err := rows.Scan(&ci.ID, &ci.Value, &ci.StoreID); err != nil {
			return nil, err
		}
		infos = append(infos, ci)
	}

	return infos, rows.Err()
}

func (r *repository) CreateContactInfo(ctx context.Context, storeID uint, value *string) (*ContactInfo, error) {
	ci := &ContactInfo{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contact_infos (value, store_id)
		VALUES ($1, $2)
		RETURNING id, value, store_id
	`, value, storeID).Scan(&ci.ID, &ci.Value, &ci.StoreID)
	if err != nil {
		return nil, err
	}
	return ci, nil
}

func (r *repository) UpdateContactInfo(ctx context.Context, id uint, value *string) (*ContactInfo, error) {
	ci := &ContactInfo{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE contact_infos
		SET value = $1
		WHERE id = $2
		RETURNING id, value, store_id
	`, value, id).Scan(&ci.ID, &ci.Value, &ci.StoreID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ci, nil
}

func (r *repository) DeleteContactInfo(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_infos WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrContactInfoNotFound
	}

	return nil
}
