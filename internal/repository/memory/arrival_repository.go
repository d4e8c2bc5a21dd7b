package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
)

type arrivalKey struct {
	productID int64
	orderDate domain.Date
}

// ArrivalRepository provides in-memory purchase-order arrival storage
type ArrivalRepository struct {
	mu       sync.RWMutex
	arrivals map[arrivalKey]domain.ArrivalRecord
	nextID   int64
	now      func() time.Time
}

// NewArrivalRepository creates a new in-memory arrival repository
func NewArrivalRepository() *ArrivalRepository {
	return &ArrivalRepository{
		arrivals: make(map[arrivalKey]domain.ArrivalRecord),
		nextID:   1,
		now:      time.Now,
	}
}

var _ repository.ArrivalRepository = (*ArrivalRepository)(nil)

// SaveArrival creates an arrival for (product, order date), or updates the
// quantity, expected date and status of the existing one. The product
// code/name snapshot of an existing record is kept.
func (r *ArrivalRepository) SaveArrival(a domain.ArrivalRecord) domain.ArrivalRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.Status == "" {
		a.Status = domain.ArrivalPending
	}
	now := r.now().UTC()

	key := arrivalKey{productID: a.ProductID, orderDate: a.OrderDate}
	if existing, ok := r.arrivals[key]; ok {
		existing.Quantity = a.Quantity
		existing.ExpectedDate = a.ExpectedDate
		existing.Status = a.Status
		existing.UpdatedAt = now
		r.arrivals[key] = existing
		return existing
	}

	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = now
	a.UpdatedAt = now
	r.arrivals[key] = a
	return a
}

func (r *ArrivalRepository) FindPendingArrivals(ctx context.Context, productID int64, productCode string, orderDateBefore, expectedDateAtOrAfter domain.Date) ([]domain.ArrivalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.ArrivalRecord
	for _, a := range r.arrivals {
		if a.ProductID != productID || a.ProductCode != productCode {
			continue
		}
		if a.Status != domain.ArrivalPending {
			continue
		}
		if !a.OrderDate.Before(orderDateBefore) || a.ExpectedDate.Before(expectedDateAtOrAfter) {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
