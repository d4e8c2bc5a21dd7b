package sqlstore

import (
	"context"
	"fmt"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
)

type arrivalRepository struct {
	db *DB
}

func NewArrivalRepository(db *DB) repository.ArrivalRepository {
	return &arrivalRepository{db: db}
}

func (r *arrivalRepository) FindPendingArrivals(ctx context.Context, productID int64, productCode string, orderDateBefore, expectedDateAtOrAfter domain.Date) ([]domain.ArrivalRecord, error) {
	query := `
		SELECT
			id,
			product_id,
			product_code,
			COALESCE(product_name, '') AS product_name,
			order_date,
			expected_date,
			quantity,
			status,
			created_at,
			updated_at
		FROM arrivals
		WHERE product_id = ?
			AND product_code = ?
			AND LOWER(TRIM(status)) = ?
			AND order_date < ?
			AND expected_date >= ?
		ORDER BY id
	`

	var arrivals []domain.ArrivalRecord
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &arrivals, r.db.Rebind(query),
			productID, productCode, domain.ArrivalPending, orderDateBefore, expectedDateAtOrAfter)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending arrivals for product %d: %w", productID, err)
	}

	return arrivals, nil
}
