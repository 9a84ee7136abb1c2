package store

import (
	"context"

	"mealdash-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for stores and their contact infos.
type Service interface {
	SearchStores(ctx context.Context, params SearchParams) ([]*Store, error)
	GetStore(ctx context.Context, id uint) (*Store, error)
	CreateStore(ctx context.Context, params CreateStoreParams) (*Store, error)
	UpdateStore(ctx context.Context, params UpdateStoreParams) (*Store, error)
	DeleteStore(ctx context.Context, id uint) error

	GetContactInfos(ctx context.Context, storeID uint) ([]*ContactInfo, error)
	AddContactInfo(ctx context.Context, storeID uint, value *string) (*ContactInfo, error)
	UpdateContactInfo(ctx context.Context, id uint, value *string) (*ContactInfo, error)
	DeleteContactInfo(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SearchStores(ctx context.Context, params SearchParams) ([]*Store, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SearchStores"),
	)

	stores, err := s.repo.SearchStores(ctx, params)
	if err != nil {
		log.Error("failed to search stores", zap.Error(err))
		return nil, err
	}

	return stores, nil
}

func (s *service) GetStore(ctx context.Context, id uint) (*Store, error) {
	st, err := s.repo.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStoreNotFound
	}
	return st, nil
}

func (s *service) CreateStore(ctx context.Context, params CreateStoreParams) (*Store, error) {
	if params.Name == "" {
		return nil, ErrMissingName
	}
	if params.Address == "" {
		return nil, ErrMissingAddress
	}
	return s.repo.CreateStore(ctx, params)
}

func (s *service) UpdateStore(ctx context.Context, params UpdateStoreParams) (*Store, error) {
	if params.Name == "" {
		return nil, ErrMissingName
	}
	if params.Address == "" {
		return nil, ErrMissingAddress
	}

	st, err := s.repo.UpdateStore(ctx, params)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStoreNotFound
	}
	return st, nil
}

func (s *service) DeleteStore(ctx context.Context, id uint) error {
	return s.repo.DeleteStore(ctx, id)
}

func (s *service) GetContactInfos(ctx context.Context, storeID uint) ([]*ContactInfo, error) {
	return s.repo.GetContactInfos(ctx, storeID)
}

func (s *service) AddContactInfo(ctx context.Context, storeID uint, value *string) (*ContactInfo, error) {
	st, err := s.repo.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStoreNotFound
	}
	return s.repo.CreateContactInfo(ctx, storeID, value)
}

func (s *service) UpdateContactInfo(ctx context.Context, id uint, value *string) (*ContactInfo, error) {
	ci, err := s.repo.UpdateContactInfo(ctx, id, value)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		return nil, ErrContactInfoNotFound
	}
	return ci, nil
}

func (s *service) DeleteContactInfo(ctx context.Context, id uint) error {
	return s.repo.DeleteContactInfo(ctx, id)
}
