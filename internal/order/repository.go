package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"shopline-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	PlaceOrder(ctx context.Context, userID uint, lines []Line) (*Order, error)
	GetOrdersByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	CompleteOrder(ctx context.Context, orderID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceOrder validates every line against current stock and commits the
// order, its items, and the stock decrements as one transaction. Product
// rows are locked in id order so two overlapping checkouts never deadlock
// and never drive stock negative.
func (r *repository) PlaceOrder(ctx context.Context, userID uint, lines []Line) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", userID),
		zap.Int("line_count", len(lines)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	// 1. Lock each product row and snapshot its current price.
	var total float64
	items := make([]OrderItem, 0, len(sorted))

	for _, ln := range sorted {
		var name string
		var price float64
		var stock int

		err := tx.QueryRowContext(ctx, `
			SELECT name, price, stock
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, ln.ProductID).Scan(&name, &price, &stock)

		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("product not found", zap.Uint("product_id", ln.ProductID))
			return nil, ErrProductNotFound
		}
		if err != nil {
			log.Error("failed to lock product row",
				zap.Uint("product_id", ln.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		if stock < ln.Quantity {
			log.Warn("insufficient stock",
				zap.Uint("product_id", ln.ProductID),
				zap.Int("stock", stock),
				zap.Int("requested", ln.Quantity),
			)
			return nil, ErrInsufficientStock
		}

		total += price * float64(ln.Quantity)
		items = append(items, OrderItem{
			ProductID:   ln.ProductID,
			ProductName: name,
			Quantity:    ln.Quantity,
			Price:       price,
		})
	}

	// 2. Create the order row.
	o := &Order{UserID: userID, Total: total, Status: StatusPending}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total, status)
		VALUES ($1, $2, 'pending')
		RETURNING id, created_at
	`, userID, total).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 3. Insert items and decrement stock.
	for i := range items {
		item := &items[i]
		item.OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		// The row is locked, so a zero here means the guard caught a
		// concurrent decrement that slipped past validation.
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return nil, ErrInsufficientStock
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	committed = true

	o.Items = items
	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.Float64("total", o.Total),
	)

	return o, nil
}

func (r *repository) GetOrdersByUser(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetOrdersByUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.getOrderItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, total, status, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.getOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) getOrderItems(ctx context.Context, orderID uint) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.product_id, oi.quantity, oi.price, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.Price, &item.ProductName); err != nil {
			return nil, err
		}
		item.OrderID = orderID
		items = append(items, item)
	}

	return items, rows.Err()
}

// CompleteOrder transitions a pending order to completed. The status guard
// makes the transition idempotent-safe under concurrent payment calls.
func (r *repository) CompleteOrder(ctx context.Context, orderID uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'completed'
		WHERE id = $1 AND status = 'pending'
	`, orderID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
