package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetList(ctx context.Context, opts ProductQueryOptions) ([]*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params NewProductParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		params := NewProductParams{Name: "Widget", Price: 5.99, Stock: 100}
		expected := &Product{ID: 1, Name: "Widget", Price: 5.99, Stock: 100}
		mockRepo.On("Create", ctx, params).Return(expected, nil)

		p, err := svc.Create(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
	})

	t.Run("MissingName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, NewProductParams{Price: 5.99})
		assert.ErrorIs(t, err, ErrInvalidProduct)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, NewProductParams{Name: "Widget", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("NegativeStockClamped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, NewProductParams{Name: "Widget", Price: 5.99, Stock: 0}).
			Return(&Product{ID: 1}, nil)

		_, err := svc.Create(ctx, NewProductParams{Name: "Widget", Price: 5.99, Stock: -5})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		price := -1.0
		_, err := svc.Update(ctx, UpdateProductParams{ID: 1, Price: &price})
		assert.ErrorIs(t, err, ErrInvalidProduct)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("NegativeStock", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		stock := -1
		_, err := svc.Update(ctx, UpdateProductParams{ID: 1, Stock: &stock})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("Delegates", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		name := "Widget 2"
		params := UpdateProductParams{ID: 1, Name: &name}
		expected := &Product{ID: 1, Name: name}
		mockRepo.On("Update", ctx, params).Return(expected, nil)

		p, err := svc.Update(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
	})
}
