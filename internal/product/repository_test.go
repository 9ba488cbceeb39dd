package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "description", "price", "image_url", "stock", "category", "created_at"}

func TestRepository_GetList(t *testing.T) {
	ctx := context.Background()

	t.Run("All", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, name, description, price, image_url, stock, category, created_at FROM products ORDER BY id`).
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "Widget", nil, 5.99, nil, 100, "tools", time.Now()).
				AddRow(2, "Gadget", "shiny", 3.50, nil, 10, "toys", time.Now()))

		products, err := repo.GetList(ctx, ProductQueryOptions{})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Widget", products[0].Name)
		assert.Equal(t, "shiny", *products[1].Description)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		category := "tools"
		mock.ExpectQuery(`SELECT .* FROM products WHERE category = \$1 ORDER BY id`).
			WithArgs(category).
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "Widget", nil, 5.99, nil, 100, "tools", time.Now()))

		products, err := repo.GetList(ctx, ProductQueryOptions{Category: &category})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "tools", *products[0].Category)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM products`).WillReturnError(errors.New("db error"))

		_, err = repo.GetList(ctx, ProductQueryOptions{})
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "Widget", nil, 5.99, nil, 100, "tools", time.Now()))

		p, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
		assert.InDelta(t, 5.99, p.Price, 0.0001)
		assert.Equal(t, 100, p.Stock)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(999)).
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err = repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	category := "tools"
	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("Widget", nil, 5.99, nil, 100, &category).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(1, "Widget", nil, 5.99, nil, 100, "tools", time.Now()))

	p, err := repo.Create(context.Background(), NewProductParams{
		Name:     "Widget",
		Price:    5.99,
		Stock:    100,
		Category: &category,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		price := 6.99
		mock.ExpectQuery(`UPDATE products`).
			WithArgs(nil, nil, &price, nil, nil, nil, uint(1)).
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "Widget", nil, 6.99, nil, 100, "tools", time.Now()))

		p, err := repo.Update(ctx, UpdateProductParams{ID: 1, Price: &price})
		require.NoError(t, err)
		assert.InDelta(t, 6.99, p.Price, 0.0001)
		assert.Equal(t, "Widget", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`UPDATE products`).
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err = repo.Update(ctx, UpdateProductParams{ID: 999})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(uint(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 999), ErrProductNotFound)
	})
}
