package customer

import (
	"context"
	"database/sql"
	"fmt"

	"bijoux-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Customer, error)
	ListAddresses(ctx context.Context, customerID uint) ([]*Address, error)
	UpsertAddress(ctx context.Context, customerID uint, input UpsertAddressInput) (*Address, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Customer, error) {
	c := &Customer{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, phone, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetCustomer, err)
	}
	return c, nil
}

func (r *repository) ListAddresses(ctx context.Context, customerID uint) ([]*Address, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, recipient_name, recipient_phone,
		       street, ward, district, city, postal_code, country,
		       is_current, created_at, updated_at
		FROM customer_addresses
		WHERE customer_id = $1
		ORDER BY created_at ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListAddresses, err)
	}
	defer rows.Close()

	var result []*Address
	for rows.Next() {
		a := &Address{}
		if err := rows.Scan(
			&a.ID, &a.CustomerID, &a.RecipientName, &a.RecipientPhone,
			&a.Street, &a.Ward, &a.District, &a.City, &a.PostalCode, &a.Country,
			&a.IsCurrent, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListAddresses, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListAddresses, err)
	}
	return result, nil
}

// UpsertAddress inserts the address or, when a row with the same
// street+district+city already exists for the customer, refreshes that row's
// recipient and postal fields instead of creating a duplicate. The updated
// row also becomes the customer's current address.
func (r *repository) UpsertAddress(ctx context.Context, customerID uint, input UpsertAddressInput) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertAddress"),
		zap.Uint("customer_id", customerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpsertAddress, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		UPDATE customer_addresses SET is_current = FALSE
		WHERE customer_id = $1 AND is_current
	`, customerID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpsertAddress, err)
	}

	a := &Address{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customer_addresses (
			id, customer_id, recipient_name, recipient_phone,
			street, ward, district, city, postal_code, country, is_current
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,TRUE)
		ON CONFLICT (customer_id, street, district, city) DO UPDATE SET
			recipient_name  = EXCLUDED.recipient_name,
			recipient_phone = EXCLUDED.recipient_phone,
			ward            = EXCLUDED.ward,
			postal_code     = EXCLUDED.postal_code,
			country         = EXCLUDED.country,
			is_current      = TRUE,
			updated_at      = NOW()
		RETURNING id, customer_id, recipient_name, recipient_phone,
		          street, ward, district, city, postal_code, country,
		          is_current, created_at, updated_at
	`,
		uuid.New(), customerID, input.RecipientName, input.RecipientPhone,
		input.Street, input.Ward, input.District, input.City,
		input.PostalCode, input.Country,
	).Scan(
		&a.ID, &a.CustomerID, &a.RecipientName, &a.RecipientPhone,
		&a.Street, &a.Ward, &a.District, &a.City, &a.PostalCode, &a.Country,
		&a.IsCurrent, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		log.Error("address upsert failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedUpsertAddress, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpsertAddress, err)
	}

	log.Info("address upserted", zap.String("address_id", a.ID.String()))
	return a, nil
}
