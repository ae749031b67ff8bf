package cart

import (
	"context"
	"database/sql"
	"fmt"

	"bijoux-be/internal/logger"

	"go.uber.org/zap"
)

// Repository persists the server-held cart, one row per line keyed by
// (customer, product, size, color).
type Repository interface {
	GetCart(ctx context.Context, customerID uint) (Cart, error)
	GetLineQuantity(ctx context.Context, customerID uint, key LineKey) (int, bool, error)
	CreateLine(ctx context.Context, customerID uint, key LineKey, quantity int) error
	UpdateLineQuantity(ctx context.Context, customerID uint, key LineKey, quantity int) error
	RemoveLine(ctx context.Context, customerID uint, key LineKey) error
	Replace(ctx context.Context, customerID uint, c Cart) error
	Clear(ctx context.Context, customerID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCart(ctx context.Context, customerID uint) (Cart, error) {
	query := `
	SELECT
		ci.product_id,
		ci.size,
		ci.color,
		ci.quantity,
		p.name,
		p.price,
		p.imageurl
	FROM cart_items ci
	JOIN products p ON ci.product_id = p.id
	WHERE ci.customer_id = $1
	ORDER BY ci.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return Cart{}, fmt.Errorf("%w: %v", ErrFailedGetCart, err)
	}
	defer rows.Close()

	c := Cart{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.Product.ID,
			&l.Size,
			&l.Color,
			&l.Quantity,
			&l.Product.Name,
			&l.Product.UnitPrice,
			&l.Product.ImageURL,
		); err != nil {
			return Cart{}, fmt.Errorf("%w: %v", ErrFailedGetCart, err)
		}
		c.Lines = append(c.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return Cart{}, fmt.Errorf("%w: %v", ErrFailedGetCart, err)
	}

	return c, nil
}

func (r *repository) GetLineQuantity(ctx context.Context, customerID uint, key LineKey) (int, bool, error) {
	var qty int
	err := r.db.QueryRowContext(ctx, `
		SELECT quantity
		FROM cart_items
		WHERE customer_id = $1 AND product_id = $2 AND size = $3 AND color = $4
	`, customerID, key.ProductID, key.Size, key.Color).Scan(&qty)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrFailedGetCart, err)
	}
	return qty, true, nil
}

func (r *repository) CreateLine(ctx context.Context, customerID uint, key LineKey, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (customer_id, product_id, size, color, quantity)
		VALUES ($1, $2, $3, $4, $5)
	`, customerID, key.ProductID, key.Size, key.Color, quantity)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create cart line",
			zap.Uint("customer_id", customerID),
			zap.String("product_id", key.ProductID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

func (r *repository) UpdateLineQuantity(ctx context.Context, customerID uint, key LineKey, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE customer_id = $2 AND product_id = $3 AND size = $4 AND color = $5
	`, quantity, customerID, key.ProductID, key.Size, key.Color)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) RemoveLine(ctx context.Context, customerID uint, key LineKey) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE customer_id = $1 AND product_id = $2 AND size = $3 AND color = $4
	`, customerID, key.ProductID, key.Size, key.Color)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedRemoveItem, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedRemoveItem, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Replace swaps the customer's stored cart for the given one in a single
// transaction. Used after a login merge.
func (r *repository) Replace(ctx context.Context, customerID uint, c Cart) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE customer_id = $1`, customerID); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}

	for _, l := range c.Lines {
		if l.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (customer_id, product_id, size, color, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, customerID, l.Product.ID, l.Size, l.Color, l.Quantity)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

// Clear is idempotent: clearing an already empty cart succeeds, so a retried
// checkout can call it again safely.
func (r *repository) Clear(ctx context.Context, customerID uint) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}
