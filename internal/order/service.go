package order

import (
	"context"

	"shopline-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID uint, lines []Line) (*Order, error)
	GetOrders(ctx context.Context, userID uint) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PlaceOrder(ctx context.Context, userID uint, lines []Line) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", userID),
		zap.Int("line_count", len(lines)),
	)

	if userID == 0 {
		return nil, ErrUnauthorized
	}

	if len(lines) == 0 {
		log.Warn("empty order rejected")
		return nil, ErrEmptyOrder
	}

	// A bad line fails the whole request rather than being filtered out.
	for i, ln := range lines {
		if ln.Quantity <= 0 {
			log.Warn("invalid quantity",
				zap.Int("index", i),
				zap.Uint("product_id", ln.ProductID),
				zap.Int("quantity", ln.Quantity),
			)
			return nil, ErrInvalidQuantity
		}
	}

	o, err := s.repo.PlaceOrder(ctx, userID, lines)
	if err != nil {
		log.Error("failed to place order", zap.Error(err))
		return nil, err
	}

	return o, nil
}

func (s *service) GetOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

// GetOrderDetail returns a single order; non-admin callers only see their own.
func (s *service) GetOrderDetail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}

	return o, nil
}
