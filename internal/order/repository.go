package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"bijoux-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// Create persists the order and all its lines in one transaction. The
	// order value must be fully built before the call; there are no
	// incremental field writes.
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, error)
	// UpdateStatus is a compare-and-set on the status column. It fails with
	// ErrStatusConflict when the stored status is no longer `from`.
	UpdateStatus(ctx context.Context, id uint, from, to Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	id, customer_id, customer_name, customer_email,
	total, status, delivery_method, notes,
	ship_recipient_name, ship_recipient_phone, ship_street, ship_ward,
	ship_district, ship_city, ship_postal_code, ship_country,
	pay_transaction_id, pay_masked_card, pay_method, pay_status,
	pay_message, pay_test_mode, pay_processed_at,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Uint("customer_id", o.CustomerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			customer_id, customer_name, customer_email,
			total, status, delivery_method, notes,
			ship_recipient_name, ship_recipient_phone, ship_street, ship_ward,
			ship_district, ship_city, ship_postal_code, ship_country,
			pay_transaction_id, pay_masked_card, pay_method, pay_status,
			pay_message, pay_test_mode, pay_processed_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,
			$8,$9,$10,$11,$12,$13,$14,$15,
			$16,$17,$18,$19,$20,$21,$22
		)
		RETURNING id, created_at, updated_at
	`,
		o.CustomerID, o.CustomerName, o.CustomerEmail,
		o.Total, o.Status, o.DeliveryMethod, o.Notes,
		o.Shipping.RecipientName, o.Shipping.RecipientPhone, o.Shipping.Street, o.Shipping.Ward,
		o.Shipping.District, o.Shipping.City, o.Shipping.PostalCode, o.Shipping.Country,
		o.Payment.TransactionID, o.Payment.MaskedCard, o.Payment.Method, o.Payment.Status,
		o.Payment.Message, o.Payment.TestMode, o.Payment.ProcessedAt,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	for i := range o.Items {
		it := &o.Items[i]
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, product_name, imageurl,
				unit_price, quantity, size, color
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING id
		`,
			o.ID, it.ProductID, it.ProductName, it.ImageURL,
			it.UnitPrice, it.Quantity, it.Size, it.Color,
		).Scan(&it.ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.String("product_id", it.ProductID),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.String("total", o.Total.String()),
	)
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}

	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Order, error) {
	where := []string{"TRUE"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		where = append(where, fmt.Sprintf(
			"(customer_name ILIKE $%d OR customer_email ILIKE $%d)",
			len(args), len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, from, to Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *repository) loadItems(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, product_name, imageurl,
		       unit_price, quantity, size, color
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, o.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it Line
		if err := rows.Scan(
			&it.ID, &it.ProductID, &it.ProductName, &it.ImageURL,
			&it.UnitPrice, &it.Quantity, &it.Size, &it.Color,
		); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
		}
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail,
		&o.Total, &o.Status, &o.DeliveryMethod, &o.Notes,
		&o.Shipping.RecipientName, &o.Shipping.RecipientPhone, &o.Shipping.Street, &o.Shipping.Ward,
		&o.Shipping.District, &o.Shipping.City, &o.Shipping.PostalCode, &o.Shipping.Country,
		&o.Payment.TransactionID, &o.Payment.MaskedCard, &o.Payment.Method, &o.Payment.Status,
		&o.Payment.Message, &o.Payment.TestMode, &o.Payment.ProcessedAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func collectOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}
	return orders, nil
}
