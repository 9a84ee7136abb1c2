package product

import (
	"context"

	"mealdash-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for products and combos.
type Service interface {
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

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SearchProducts(ctx context.Context, params SearchParams) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SearchProducts"),
	)

	products, err := s.repo.SearchProducts(ctx, params)
	if err != nil {
		log.Error("failed to search products", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	if params.Name == "" {
		return nil, ErrMissingName
	}
	if params.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return s.repo.CreateProduct(ctx, params)
}

func (s *service) UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error) {
	if params.Name == "" {
		return nil, ErrMissingName
	}
	if params.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	p, err := s.repo.UpdateProduct(ctx, params)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) GetCombos(ctx context.Context, storeID *uint) ([]*Combo, error) {
	return s.repo.GetCombos(ctx, storeID)
}

func (s *service) GetCombo(ctx context.Context, id uint) (*Combo, error) {
	c, err := s.repo.GetCombo(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrComboNotFound
	}
	return c, nil
}

func (s *service) CreateCombo(ctx context.Context, params CreateComboParams) (*Combo, error) {
	if params.Name == "" {
		return nil, ErrMissingName
	}
	if params.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return s.repo.CreateCombo(ctx, params)
}

func (s *service) DeleteCombo(ctx context.Context, id uint) error {
	return s.repo.DeleteCombo(ctx, id)
}
