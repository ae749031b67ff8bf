package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProduct(ctx context.Context, opts GetProductOptions) (*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func ring() *Product {
	img := "ring.jpg"
	return &Product{
		ID:       "ring-1",
		Name:     "Solitaire Ring",
		ImageURL: &img,
		Price:    decimal.RequireFromString("500000"),
		Sizes:    []string{"5", "6", "7"},
		Colors:   []string{"gold", "silver"},
		Status:   "active",
	}
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, GetProductOptions{ProductID: "ring-1", OnlyActive: true}).
			Return(ring(), nil)

		p, err := svc.GetProduct(ctx, "ring-1")
		require.NoError(t, err)
		assert.Equal(t, "Solitaire Ring", p.Name)
	})

	t.Run("MissingRowBecomesNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(nil, nil)

		_, err := svc.GetProduct(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("EmptyIDShortCircuits", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.GetProduct(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})
}

func TestService_ResolvePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(ring(), nil)

		vp, err := svc.ResolvePrice(ctx, "ring-1", "6", "gold")
		require.NoError(t, err)
		assert.Equal(t, "ring-1", vp.ProductID)
		assert.Equal(t, "6", vp.Size)
		assert.True(t, vp.UnitPrice.Equal(decimal.RequireFromString("500000")))
	})

	t.Run("EmptySelectionSkipsOptionChecks", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(ring(), nil)

		vp, err := svc.ResolvePrice(ctx, "ring-1", "", "")
		require.NoError(t, err)
		assert.Empty(t, vp.Size)
		assert.Empty(t, vp.Color)
	})

	t.Run("UnknownSize", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(ring(), nil)

		_, err := svc.ResolvePrice(ctx, "ring-1", "13", "gold")
		assert.ErrorIs(t, err, ErrUnknownSize)
	})

	t.Run("UnknownColor", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(ring(), nil)

		_, err := svc.ResolvePrice(ctx, "ring-1", "6", "rose")
		assert.ErrorIs(t, err, ErrUnknownColor)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(nil, nil)

		_, err := svc.ResolvePrice(ctx, "ghost", "", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("RepositoryErrorPassesThrough", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetProduct", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.ResolvePrice(ctx, "ring-1", "", "")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
