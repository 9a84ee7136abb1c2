package order

import (
	"context"

	"mealdash-be/internal/courier"
	"mealdash-be/internal/logger"
	"mealdash-be/internal/metrics"

	"go.uber.org/zap"
)

// Service defines the business logic for orders.
type Service interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error)
	GetOrder(ctx context.Context, id uint) (*Order, error)
	ListOrders(ctx context.Context, params ListParams) ([]*Order, error)
	AssignCourier(ctx context.Context, orderID, courierID uint) (*Order, error)
	AdvanceStatus(ctx context.Context, orderID uint, next Status) (*Order, error)
}

type service struct {
	repo        Repository
	courierRepo courier.Repository
}

func NewService(repo Repository, courierRepo courier.Repository) Service {
	return &service{repo: repo, courierRepo: courierRepo}
}

// CreateOrder places a new pending order. When a cart id is supplied the
// order snapshots the cart's lines and the cart is emptied on success.
func (s *service) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Uint("client_id", params.ClientID),
	)

	if params.DeliveryAddress == "" {
		return nil, ErrMissingAddress
	}

	o, err := s.repo.CreateOrderTx(ctx, params)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	metrics.OrdersCreated.Inc()

	log.Info("order placed", zap.Uint("order_id", o.ID))

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id uint) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, params ListParams) ([]*Order, error) {
	if params.Status != nil && !ValidStatus(*params.Status) {
		return nil, ErrUnknownStatus
	}
	return s.repo.ListOrders(ctx, params)
}

// AssignCourier pins an available courier to a pending order and marks
// them busy.
func (s *service) AssignCourier(ctx context.Context, orderID, courierID uint) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AssignCourier"),
		zap.Uint("order_id", orderID),
		zap.Uint("courier_id", courierID),
	)

	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.Status != StatusPending {
		return nil, ErrNotAssignable
	}

	c, err := s.courierRepo.GetCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.Type != courier.TypeAvailable {
		return nil, ErrCourierUnavailable
	}

	if err := s.repo.AssignCourierTx(ctx, orderID, courierID); err != nil {
		log.Error("failed to assign courier", zap.Error(err))
		return nil, err
	}

	o.CourierID = &courierID

	log.Info("courier assigned")

	return o, nil
}

// AdvanceStatus moves the order along its lifecycle. Reaching a terminal
// status releases the assigned courier.
func (s *service) AdvanceStatus(ctx context.Context, orderID uint, next Status) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdvanceStatus"),
		zap.Uint("order_id", orderID),
	)

	if !ValidStatus(next) {
		return nil, ErrUnknownStatus
	}

	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	if !CanTransition(o.Status, next) {
		return nil, ErrInvalidTransition
	}

	var release *uint
	if IsTerminal(next) {
		release = o.CourierID
	}

	if err := s.repo.UpdateStatusTx(ctx, orderID, next, release); err != nil {
		log.Error("failed to update status", zap.Error(err))
		return nil, err
	}

	log.Info("order status changed",
		zap.String("from", string(o.Status)),
		zap.String("to", string(next)),
	)

	o.Status = next

	return o, nil
}
