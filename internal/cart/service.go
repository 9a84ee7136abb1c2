package cart

import (
	"context"

	"mealdash-be/internal/logger"
	"mealdash-be/internal/metrics"
	"mealdash-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	AddItem(ctx context.Context, params AddItemParams) (*CartItem, error)
	GetCart(ctx context.Context, userID uint) (*View, error)
	RemoveItem(ctx context.Context, params RemoveItemParams) error
	ClearCart(ctx context.Context, userID uint) error
}

// service implements the Service interface
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddItem puts a product into the user's cart, lazily creating the cart on
// first use. Adding a product already in the cart merges quantities.
func (s *service) AddItem(ctx context.Context, params AddItemParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.Uint("user_id", params.UserID),
		zap.Uint("product_id", params.ProductID),
	)

	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetProduct(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	c, err := s.repo.GetOrCreateCart(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.UpsertItem(ctx, c.ID, params.ProductID, params.Quantity)
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	metrics.CartAdds.Inc()

	log.Info("item added to cart",
		zap.Uint("cart_id", c.ID),
		zap.Int("quantity", item.Quantity),
	)

	return item, nil
}

// GetCart returns the cart with resolved products and the total computed
// at read time.
func (s *service) GetCart(ctx context.Context, userID uint) (*View, error) {
	c, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	rows, err := s.repo.GetCartRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := buildView(rows)

	// An existing cart with zero lines still resolves; keep its identity.
	if len(rows) == 0 {
		view.ID = c.ID
		view.UserID = c.UserID
	}

	return view, nil
}

// RemoveItem deletes one product line from the user's cart.
func (s *service) RemoveItem(ctx context.Context, params RemoveItemParams) error {
	c, err := s.repo.GetCartByUserID(ctx, params.UserID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCartNotFound
	}

	return s.repo.RemoveItem(ctx, c.ID, params.ProductID)
}

// ClearCart removes all items from the user's cart.
func (s *service) ClearCart(ctx context.Context, userID uint) error {
	c, err := s.repo.GetCartByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCartNotFound
	}

	return s.repo.ClearCart(ctx, c.ID)
}
