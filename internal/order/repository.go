package order

import (
	"context"
	"errors"
	"sync"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository stores placed orders. Create assigns the sequential, 1-based
// order id.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id int) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	orders []*Order
}

// NewRepository returns an empty in-memory order store.
func NewRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = len(r.orders) + 1
	r.orders = append(r.orders, order)

	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > len(r.orders) {
		return nil, ErrOrderNotFound
	}

	return r.orders[id-1], nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*Order, len(r.orders))
	copy(orders, r.orders)

	return orders, nil
}
