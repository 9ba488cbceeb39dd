package admin

import (
	"context"
	"database/sql"

	"shopline-be/internal/logger"

	"go.uber.org/zap"
)

type Stats struct {
	TotalUsers   int     `json:"total_users"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type Repository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "GetStats"))

	var s Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			COALESCE((SELECT SUM(total) FROM orders), 0)
	`).Scan(&s.TotalUsers, &s.TotalOrders, &s.TotalRevenue)

	if err != nil {
		log.Error("failed to query stats", zap.Error(err))
		return nil, err
	}

	return &s, nil
}
