package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
)

type productRepository struct {
	db *DB
}

func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT
			id,
			COALESCE(code, '') AS code,
			COALESCE(name, '') AS name,
			COALESCE(description, '') AS description,
			COALESCE(unit, '') AS unit,
			COALESCE(specification, '') AS specification,
			COALESCE(current_stock, 0) AS current_stock
		FROM products
		WHERE id = ?
	`

	var product domain.Product
	err := r.db.withSlot(ctx, func() error {
		return r.db.GetContext(ctx, &product, r.db.Rebind(query), id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return &product, nil
}
