package order

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"user_id"`
	Total     float64     `json:"total_amount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"-"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Line is one requested (product, quantity) pair of a checkout.
type Line struct {
	ProductID uint
	Quantity  int
}
