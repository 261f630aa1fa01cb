package customer

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer with this ID already exists")
)

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id int) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
}

type memoryRepository struct {
	mu        sync.RWMutex
	customers map[int]*Customer
	ids       []int
}

// NewRepository returns an empty in-memory customer store.
func NewRepository() Repository {
	return &memoryRepository{customers: make(map[int]*Customer)}
}

func (r *memoryRepository) Create(_ context.Context, customer *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.ID]; exists {
		return ErrCustomerExists
	}

	r.customers[customer.ID] = customer
	r.ids = append(r.ids, customer.ID)

	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*Customer, 0, len(r.ids))
	for _, id := range r.ids {
		customers = append(customers, r.customers[id])
	}

	return customers, nil
}
