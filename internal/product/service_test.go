package product

import (
	"context"
	"testing"

	"mealdash-be/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SearchProducts(ctx context.Context, params SearchParams) ([]*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) DeleteProduct(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetCombos(ctx context.Context, storeID *uint) ([]*Combo, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Combo), args.Error(1)
}

func (m *MockRepository) GetCombo(ctx context.Context, id uint) (*Combo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Combo), args.Error(1)
}

func (m *MockRepository) CreateCombo(ctx context.Context, params CreateComboParams) (*Combo, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Combo), args.Error(1)
}

func (m *MockRepository) DeleteCombo(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, uint(99)).Return(nil, nil)

		_, err := svc.GetProduct(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("NegativePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductParams{
			Name:  "Plov",
			Price: decimal.RequireFromString("-1"),
		})
		assert.ErrorIs(t, err, ErrNegativePrice)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("MissingName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductParams{
			Price: decimal.RequireFromString("100"),
		})
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("ZeroPriceAllowed", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := CreateProductParams{Name: "Water", Price: decimal.Zero, StoreID: 1}
		repo.On("CreateProduct", ctx, params).
			Return(&Product{ID: 1, Name: "Water", Price: decimal.Zero}, nil)

		p, err := svc.CreateProduct(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := UpdateProductParams{
			ProductID: 99,
			Name:      "Plov",
			Price:     decimal.RequireFromString("320"),
		}
		repo.On("UpdateProduct", ctx, params).Return(nil, nil)

		_, err := svc.UpdateProduct(ctx, params)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_CreateCombo(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := CreateComboParams{
			Name:    "Lunch Set",
			Price:   decimal.RequireFromString("450"),
			StoreID: 7,
		}
		repo.On("CreateCombo", ctx, params).Return(nil, ErrComboNameTaken)

		_, err := svc.CreateCombo(ctx, params)
		assert.ErrorIs(t, err, ErrComboNameTaken)
		assert.True(t, apperr.IsConflict(err))
	})
}
