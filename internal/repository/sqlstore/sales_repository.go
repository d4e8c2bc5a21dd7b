package sqlstore

import (
	"context"
	"fmt"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
)

type salesRepository struct {
	db *DB
}

func NewSalesRepository(db *DB) repository.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) FindSales(ctx context.Context, productID int64, start, end domain.Date) ([]domain.SalesRecord, error) {
	query := `
		SELECT id, product_id, date, quantity
		FROM sales
		WHERE product_id = ?
			AND date >= ?
			AND date <= ?
		ORDER BY date DESC
	`

	var sales []domain.SalesRecord
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &sales, r.db.Rebind(query), productID, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for product %d: %w", productID, err)
	}

	return sales, nil
}
