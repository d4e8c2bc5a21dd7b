// internal/repository/repository.go
package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/andresuchdata/replenish/internal/domain"
)

// ProductRepository resolves catalog entries.
type ProductRepository interface {
	// FindProduct returns domain.ErrProductNotFound when id does not resolve.
	FindProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// ArrivalRepository queries purchase orders in transit.
type ArrivalRepository interface {
	// FindPendingArrivals returns pending arrivals for the product whose
	// product_id and product_code both match, ordered before orderDateBefore
	// (exclusive) and expected on or after expectedDateAtOrAfter.
	FindPendingArrivals(ctx context.Context, productID int64, productCode string, orderDateBefore, expectedDateAtOrAfter domain.Date) ([]domain.ArrivalRecord, error)
}

// SalesRepository queries daily sales history.
type SalesRepository interface {
	// FindSales returns the product's records with start <= date <= end,
	// newest first.
	FindSales(ctx context.Context, productID int64, start, end domain.Date) ([]domain.SalesRecord, error)
}
