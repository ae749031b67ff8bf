package order

import (
	"context"
	"fmt"

	"bijoux-be/internal/logger"
	"bijoux-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	// Transition moves the order along one legal lifecycle edge. Any other
	// requested edge fails with ErrIllegalTransition and leaves the stored
	// order untouched.
	Transition(ctx context.Context, orderID uint, next Status, actor user.Actor) (*Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error)
	ListAll(ctx context.Context, filter Filter, actor user.Actor) ([]*Order, error)
	GetDetail(ctx context.Context, orderID uint, actor user.Actor) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Transition(ctx context.Context, orderID uint, next Status, actor user.Actor) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Transition"),
		zap.Uint("order_id", orderID),
		zap.String("next_status", string(next)),
	)

	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, next)
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		log.Warn("transition rejected", zap.String("current_status", string(o.Status)))
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, next)
	}
	if adminOnly(o.Status, next) && !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	// Compare-and-set: a concurrent transition surfaces as a conflict
	// instead of silently double-applying.
	if err := s.repo.UpdateStatus(ctx, orderID, o.Status, next); err != nil {
		return nil, err
	}

	log.Info("order status changed",
		zap.String("from", string(o.Status)),
		zap.Uint("actor_id", actor.ID),
	)

	return s.repo.GetByID(ctx, orderID)
}

func (s *service) ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error) {
	if customerID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) ListAll(ctx context.Context, filter Filter, actor user.Actor) ([]*Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.repo.List(ctx, filter)
}

func (s *service) GetDetail(ctx context.Context, orderID uint, actor user.Actor) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && o.CustomerID != actor.ID {
		return nil, ErrUnauthorized
	}
	return o, nil
}
