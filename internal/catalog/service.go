package catalog

import (
	"context"
	"fmt"

	"bijoux-be/internal/logger"

	"go.uber.org/zap"
)

// Service is the read-only catalog surface the storefronts and checkout
// depend on. Prices are always read fresh; nothing here caches across
// requests.
type Service interface {
	GetProduct(ctx context.Context, productID string) (*Product, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	ResolvePrice(ctx context.Context, productID, size, color string) (*VariantPrice, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, productID string) (*Product, error) {
	if productID == "" {
		return nil, ErrNotFound
	}

	p, err := s.repo.GetProduct(ctx, GetProductOptions{
		ProductID:  productID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

// ResolvePrice looks up the current unit price for a selection. The size and
// color are validated against the product's declared options but do not
// change the price.
func (s *service) ResolvePrice(ctx context.Context, productID, size, color string) (*VariantPrice, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ResolvePrice"),
		zap.String("product_id", productID),
	)

	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		if err != ErrNotFound {
			log.Error("price lookup failed", zap.Error(err))
		}
		return nil, err
	}

	if size != "" && !contains(p.Sizes, size) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}
	if color != "" && !contains(p.Colors, color) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	return &VariantPrice{
		ProductID: p.ID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		Size:      size,
		Color:     color,
		UnitPrice: p.Price,
	}, nil
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
