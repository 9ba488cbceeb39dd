package product

import (
	"context"
	"database/sql"
	"errors"

	"shopline-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetList(ctx context.Context, opts ProductQueryOptions) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, params NewProductParams) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, image_url, stock, category, created_at`

func (r *repository) GetList(ctx context.Context, opts ProductQueryOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "GetList"))

	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}

	if opts.Category != nil && *opts.Category != "" {
		query += ` WHERE category = $1`
		args = append(args, *opts.Category)
	}

	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.ImageURL, &p.Stock, &p.Category, &p.CreatedAt,
		); err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.Stock, &p.Category, &p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, params NewProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "CreateProduct"))

	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, image_url, stock, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns+`
	`,
		params.Name, params.Description, params.Price,
		params.ImageURL, params.Stock, params.Category,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.Stock, &p.Category, &p.CreatedAt,
	)

	if err != nil {
		log.Error("failed to insert product", zap.String("name", params.Name), zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "UpdateProduct"),
		zap.Uint("product_id", params.ID),
	)

	var p Product
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET
			name        = COALESCE($1, name),
			description = COALESCE($2, description),
			price       = COALESCE($3, price),
			image_url   = COALESCE($4, image_url),
			stock       = COALESCE($5, stock),
			category    = COALESCE($6, category)
		WHERE id = $7
		RETURNING `+productColumns+`
	`,
		params.Name, params.Description, params.Price,
		params.ImageURL, params.Stock, params.Category, params.ID,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.Stock, &p.Category, &p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
