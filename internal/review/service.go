package review

import (
	"context"

	"mealdash-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for reviews. Nothing stops a client
// from reviewing the same store or courier more than once.
type Service interface {
	SubmitStoreReview(ctx context.Context, params SubmitStoreReviewParams) (*StoreReview, error)
	ListStoreReviews(ctx context.Context, storeID uint) ([]*StoreReview, error)
	SubmitCourierReview(ctx context.Context, params SubmitCourierReviewParams) (*CourierReview, error)
	ListCourierReviews(ctx context.Context, courierID uint) ([]*CourierReview, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

func (s *service) SubmitStoreReview(ctx context.Context, params SubmitStoreReviewParams) (*StoreReview, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitStoreReview"),
		zap.Uint("store_id", params.StoreID),
	)

	if !validRating(params.Rating) {
		return nil, ErrRatingOutOfRange
	}

	rv, err := s.repo.CreateStoreReview(ctx, params)
	if err != nil {
		log.Error("failed to submit store review", zap.Error(err))
		return nil, err
	}

	log.Info("store review submitted", zap.Int("rating", rv.Rating))

	return rv, nil
}

func (s *service) ListStoreReviews(ctx context.Context, storeID uint) ([]*StoreReview, error) {
	return s.repo.ListStoreReviews(ctx, storeID)
}

func (s *service) SubmitCourierReview(ctx context.Context, params SubmitCourierReviewParams) (*CourierReview, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitCourierReview"),
		zap.Uint("courier_id", params.CourierID),
	)

	if !validRating(params.Rating) {
		return nil, ErrRatingOutOfRange
	}

	rv, err := s.repo.CreateCourierReview(ctx, params)
	if err != nil {
		log.Error("failed to submit courier review", zap.Error(err))
		return nil, err
	}

	log.Info("courier review submitted", zap.Int("rating", rv.Rating))

	return rv, nil
}

func (s *service) ListCourierReviews(ctx context.Context, courierID uint) ([]*CourierReview, error) {
	return s.repo.ListCourierReviews(ctx, courierID)
}
