package payment

import (
	"context"
	"errors"

	"shopline-be/internal/logger"
	"shopline-be/internal/order"

	"go.uber.org/zap"
)

var ErrOrderNotPending = errors.New("order is not pending")

type Service interface {
	Process(ctx context.Context, userID, orderID uint) (*order.Order, error)
}

type service struct {
	orders  order.Repository
	gateway Gateway
}

func NewService(orders order.Repository, gateway Gateway) Service {
	return &service{orders: orders, gateway: gateway}
}

// Process charges a pending order owned by the caller and marks it completed.
func (s *service) Process(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ProcessPayment"),
		zap.Uint("user_id", userID),
		zap.Uint("order_id", orderID),
	)

	o, err := s.orders.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		log.Warn("payment on foreign order rejected", zap.Uint("owner_id", o.UserID))
		return nil, order.ErrUnauthorized
	}

	if o.Status != order.StatusPending {
		return nil, ErrOrderNotPending
	}

	result, err := s.gateway.Charge(ctx, o.ID, o.Total)
	if err != nil {
		log.Error("gateway charge failed", zap.Error(err))
		return nil, err
	}

	if err := s.orders.CompleteOrder(ctx, o.ID); err != nil {
		return nil, err
	}
	o.Status = order.StatusCompleted

	log.Info("payment processed",
		zap.String("reference", result.Reference),
		zap.Float64("amount", result.Amount),
	)

	return o, nil
}
