package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"bijoux-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetProduct(ctx context.Context, opts GetProductOptions) (*Product, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProduct(ctx context.Context, opts GetProductOptions) (*Product, error) {
	query := `
	SELECT
		id,
		name,
		slug,
		category_id,
		price,
		imageurl,
		sizes,
		colors,
		description,
		status
	FROM products
	WHERE id = $1
	`
	if opts.OnlyActive {
		query += ` AND status = 'active'`
	}

	p := &Product{}
	row := r.db.QueryRowContext(ctx, query, opts.ProductID)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.CategoryID,
		&p.Price,
		&p.ImageURL,
		&p.Sizes,
		&p.Colors,
		&p.Description,
		&p.Status,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("product_id", opts.ProductID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedGetRows, err)
	}

	return p, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, slug
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetRows, err)
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedGetRows, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetRows, err)
	}

	return result, nil
}
