package memory

import (
	"context"
	"sync"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
)

// ProductRepository provides in-memory product storage
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]domain.Product),
		nextID:   1,
	}
}

// Verify interface compliance
var _ repository.ProductRepository = (*ProductRepository)(nil)

// SaveProduct stores p, assigning an id when p.ID is zero, and returns the stored copy.
func (r *ProductRepository) SaveProduct(p domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.products[p.ID] = p
	return p
}

func (r *ProductRepository) FindProduct(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}
