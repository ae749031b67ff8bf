package customer

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	GetByID(ctx context.Context, id uint) (*Customer, error)
	ListAddresses(ctx context.Context, customerID uint) ([]*Address, error)
	UpsertAddress(ctx context.Context, customerID uint, input UpsertAddressInput) (*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id uint) (*Customer, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAddresses(ctx context.Context, customerID uint) ([]*Address, error) {
	if customerID == 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListAddresses(ctx, customerID)
}

func (s *service) UpsertAddress(ctx context.Context, customerID uint, input UpsertAddressInput) (*Address, error) {
	if customerID == 0 {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(input.RecipientName) == "" {
		return nil, errors.New("recipient name is required")
	}
	if strings.TrimSpace(input.Street) == "" {
		return nil, errors.New("street is required")
	}
	if strings.TrimSpace(input.City) == "" {
		return nil, errors.New("city is required")
	}

	return s.repo.UpsertAddress(ctx, customerID, input)
}
