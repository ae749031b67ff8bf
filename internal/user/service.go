package user

import (
	"context"
	"errors"
	"strings"

	"bijoux-be/internal/logger"
	"bijoux-be/internal/mail"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	// Authenticate checks credentials and returns a signed bearer token.
	Authenticate(ctx context.Context, email, password string) (string, *User, error)
	Reactivate(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo   Repository
	sender mail.Sender
}

func NewService(repo Repository, sender mail.Sender) Service {
	return &service{repo: repo, sender: sender}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(input.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         RoleCustomer,
		Active:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	// Welcome mail is best-effort; registration already succeeded.
	if err := s.sender.Send(ctx, u.Email, mail.TemplateWelcome, mail.TemplateArgs{
		"name": u.Name,
	}); err != nil {
		logger.FromCtx(ctx).Warn("welcome mail failed",
			zap.Uint("user_id", u.ID),
			zap.Error(err),
		)
	}

	return u, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	if !u.Active {
		return "", nil, ErrInactiveAccount
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) Reactivate(ctx context.Context, id uint) error {
	return s.repo.Reactivate(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
