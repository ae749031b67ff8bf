package cart

import (
	"context"
	"errors"
	"fmt"

	"bijoux-be/internal/catalog"
	"bijoux-be/internal/logger"

	"go.uber.org/zap"
)

// Service is the persisted-cart surface used by the storefront. The pure
// value operations in model.go stay free of I/O; this layer owns persistence.
type Service interface {
	GetCart(ctx context.Context, customerID uint) (Cart, error)
	AddItem(ctx context.Context, customerID uint, productID string, quantity int, size, color string) (Cart, error)
	SetItemQuantity(ctx context.Context, customerID uint, key LineKey, quantity int) (Cart, error)
	RemoveItem(ctx context.Context, customerID uint, key LineKey) (Cart, error)
	Clear(ctx context.Context, customerID uint) error
	MergeOnLogin(ctx context.Context, customerID uint, local Cart) (Cart, []DroppedLine, error)
}

type service struct {
	repo       Repository
	catalogSvc catalog.Service
}

func NewService(repo Repository, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc}
}

func (s *service) GetCart(ctx context.Context, customerID uint) (Cart, error) {
	if customerID == 0 {
		return Cart{}, errors.New("customer ID is required")
	}
	return s.repo.GetCart(ctx, customerID)
}

func (s *service) AddItem(ctx context.Context, customerID uint, productID string, quantity int, size, color string) (Cart, error) {
	if customerID == 0 {
		return Cart{}, errors.New("customer ID is required")
	}
	if quantity <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	// Only products that still resolve may enter a cart; size/color are
	// checked against the catalog's declared options here, not at render
	// time.
	vp, err := s.catalogSvc.ResolvePrice(ctx, productID, size, color)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Cart{}, ErrInvalidProduct
		}
		return Cart{}, err
	}

	key := LineKey{ProductID: vp.ProductID, Size: size, Color: color}

	existing, found, err := s.repo.GetLineQuantity(ctx, customerID, key)
	if err != nil {
		return Cart{}, err
	}

	if found {
		err = s.repo.UpdateLineQuantity(ctx, customerID, key, existing+quantity)
	} else {
		err = s.repo.CreateLine(ctx, customerID, key, quantity)
	}
	if err != nil {
		return Cart{}, err
	}

	return s.repo.GetCart(ctx, customerID)
}

func (s *service) SetItemQuantity(ctx context.Context, customerID uint, key LineKey, quantity int) (Cart, error) {
	if customerID == 0 {
		return Cart{}, errors.New("customer ID is required")
	}
	if key.ProductID == "" {
		return Cart{}, ErrInvalidProduct
	}

	// Zero and below means "take it out of the cart"; a stored
	// zero-quantity line is never allowed.
	if quantity <= 0 {
		return s.RemoveItem(ctx, customerID, key)
	}

	if err := s.repo.UpdateLineQuantity(ctx, customerID, key, quantity); err != nil {
		return Cart{}, err
	}
	return s.repo.GetCart(ctx, customerID)
}

func (s *service) RemoveItem(ctx context.Context, customerID uint, key LineKey) (Cart, error) {
	if customerID == 0 {
		return Cart{}, errors.New("customer ID is required")
	}
	if key.ProductID == "" {
		return Cart{}, ErrInvalidProduct
	}

	if err := s.repo.RemoveLine(ctx, customerID, key); err != nil {
		return Cart{}, err
	}
	return s.repo.GetCart(ctx, customerID)
}

func (s *service) Clear(ctx context.Context, customerID uint) error {
	if customerID == 0 {
		return errors.New("customer ID is required")
	}
	return s.repo.Clear(ctx, customerID)
}

// MergeOnLogin reconciles the cart the browser held before authentication
// with the account's stored cart and persists the result. Runs once per
// successful login; safe to re-run because Merge keeps the max quantity
// rather than summing.
func (s *service) MergeOnLogin(ctx context.Context, customerID uint, local Cart) (Cart, []DroppedLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "MergeOnLogin"),
		zap.Uint("customer_id", customerID),
	)

	remote, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		return Cart{}, nil, err
	}

	resolve := func(key LineKey) (ProductRef, bool) {
		vp, err := s.catalogSvc.ResolvePrice(ctx, key.ProductID, key.Size, key.Color)
		if err != nil {
			return ProductRef{}, false
		}
		return ProductRef{
			ID:        vp.ProductID,
			Name:      vp.Name,
			ImageURL:  vp.ImageURL,
			UnitPrice: vp.UnitPrice,
		}, true
	}

	merged, dropped := Merge(local, remote, resolve)

	if err := s.repo.Replace(ctx, customerID, merged); err != nil {
		return Cart{}, nil, fmt.Errorf("persist merged cart: %w", err)
	}

	if len(dropped) > 0 {
		log.Warn("stale cart lines dropped during merge",
			zap.Int("dropped", len(dropped)),
		)
	}
	log.Info("cart merged on login",
		zap.Int("local_lines", len(local.Lines)),
		zap.Int("remote_lines", len(remote.Lines)),
		zap.Int("merged_lines", len(merged.Lines)),
	)

	return merged, dropped, nil
}
