package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
)

type salesKey struct {
	productID int64
	date      domain.Date
}

// SalesRepository provides in-memory daily sales storage
type SalesRepository struct {
	mu      sync.RWMutex
	records map[salesKey]domain.SalesRecord
	nextID  int64
}

// NewSalesRepository creates a new in-memory sales repository
func NewSalesRepository() *SalesRepository {
	return &SalesRepository{
		records: make(map[salesKey]domain.SalesRecord),
		nextID:  1,
	}
}

var _ repository.SalesRepository = (*SalesRepository)(nil)

// UpsertSales records quantity for the product on date. A second write for the
// same day replaces the quantity and keeps the original id.
func (r *SalesRepository) UpsertSales(productID int64, date domain.Date, quantity float64) domain.SalesRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := salesKey{productID: productID, date: date}
	if existing, ok := r.records[key]; ok {
		existing.Quantity = quantity
		r.records[key] = existing
		return existing
	}

	record := domain.SalesRecord{
		ID:        r.nextID,
		ProductID: productID,
		Date:      date,
		Quantity:  quantity,
	}
	r.nextID++
	r.records[key] = record
	return record
}

func (r *SalesRepository) FindSales(ctx context.Context, productID int64, start, end domain.Date) ([]domain.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.SalesRecord
	for key, record := range r.records {
		if key.productID != productID {
			continue
		}
		if key.date.Before(start) || key.date.After(end) {
			continue
		}
		out = append(out, record)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
