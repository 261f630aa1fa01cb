package fulfillment

import (
	"context"
	"errors"
	"sync"

	"github.com/gofrs/uuid"
)

var ErrReturnNotFound = errors.New("return request not found")

// Repository stores fulfillment records created during one run.
type Repository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	CreateShipment(ctx context.Context, shipment *Shipment) error
	CreateReturn(ctx context.Context, request *ReturnRequest) error
	GetReturnByID(ctx context.Context, id uuid.UUID) (*ReturnRequest, error)
	ListReturns(ctx context.Context) ([]*ReturnRequest, error)
}

type memoryRepository struct {
	mu        sync.RWMutex
	payments  []*Payment
	shipments []*Shipment
	returns   map[uuid.UUID]*ReturnRequest
	returnIDs []uuid.UUID
}

// NewRepository returns an empty in-memory fulfillment store.
func NewRepository() Repository {
	return &memoryRepository{returns: make(map[uuid.UUID]*ReturnRequest)}
}

func (r *memoryRepository) CreatePayment(_ context.Context, payment *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments = append(r.payments, payment)

	return nil
}

func (r *memoryRepository) CreateShipment(_ context.Context, shipment *Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shipments = append(r.shipments, shipment)

	return nil
}

func (r *memoryRepository) CreateReturn(_ context.Context, request *ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.returns[request.ID] = request
	r.returnIDs = append(r.returnIDs, request.ID)

	return nil
}

func (r *memoryRepository) GetReturnByID(_ context.Context, id uuid.UUID) (*ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, exists := r.returns[id]
	if !exists {
		return nil, ErrReturnNotFound
	}

	return request, nil
}

func (r *memoryRepository) ListReturns(_ context.Context) ([]*ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*ReturnRequest, 0, len(r.returnIDs))
	for _, id := range r.returnIDs {
		requests = append(requests, r.returns[id])
	}

	return requests, nil
}
