package catalog

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product with this ID already exists")
)

// Repository stores catalog products for the lifetime of one run.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	products map[int]*Product
	ids      []int // insertion order, for listing
}

// NewRepository returns an empty in-memory product store.
func NewRepository() Repository {
	return &memoryRepository{products: make(map[int]*Product)}
}

func (r *memoryRepository) Create(_ context.Context, product *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return ErrProductExists
	}

	r.products[product.ID] = product
	r.ids = append(r.ids, product.ID)

	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*Product, 0, len(r.ids))
	for _, id := range r.ids {
		products = append(products, r.products[id])
	}

	return products, nil
}
