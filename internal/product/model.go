package product

import "time"

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Stock       int       `json:"stock"`
	Category    *string   `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewProductParams struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	Stock       int
	Category    *string
}

type UpdateProductParams struct {
	ID          uint
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Stock       *int
	Category    *string
}

type ProductQueryOptions struct {
	Category *string
}
