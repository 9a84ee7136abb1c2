package courier

import "context"

// Service defines the business logic for couriers.
type Service interface {
	GetCourier(ctx context.Context, id uint) (*Courier, error)
	ListCouriers(ctx context.Context, onlyAvailable bool) ([]*Courier, error)
	RegisterCourier(ctx context.Context, userID uint) (*Courier, error)
	SetType(ctx context.Context, id uint, t Type) error
	DeleteCourier(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCourier(ctx context.Context, id uint) (*Courier, error) {
	c, err := s.repo.GetCourier(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourierNotFound
	}
	return c, nil
}

func (s *service) ListCouriers(ctx context.Context, onlyAvailable bool) ([]*Courier, error) {
	return s.repo.ListCouriers(ctx, onlyAvailable)
}

func (s *service) RegisterCourier(ctx context.Context, userID uint) (*Courier, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyCourier
	}
	return s.repo.CreateCourier(ctx, userID)
}

func (s *service) SetType(ctx context.Context, id uint, t Type) error {
	if t != TypeAvailable && t != TypeBusy {
		return ErrInvalidType
	}
	return s.repo.SetType(ctx, id, t)
}

func (s *service) DeleteCourier(ctx context.Context, id uint) error {
	return s.repo.DeleteCourier(ctx, id)
}
