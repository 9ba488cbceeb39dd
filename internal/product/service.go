package product

import (
	"context"

	"shopline-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetList(ctx context.Context, opts ProductQueryOptions) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, params NewProductParams) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetList(ctx context.Context, opts ProductQueryOptions) ([]*Product, error) {
	return s.repo.GetList(ctx, opts)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params NewProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if params.Name == "" || params.Price < 0 {
		log.Warn("invalid product input", zap.String("name", params.Name))
		return nil, ErrInvalidProduct
	}
	if params.Stock < 0 {
		params.Stock = 0
	}

	return s.repo.Create(ctx, params)
}

func (s *service) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrInvalidProduct
	}
	if params.Stock != nil && *params.Stock < 0 {
		return nil, ErrInvalidProduct
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
