package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aswini-raj/ecommerce-cli/internal/catalog"
	"github.com/aswini-raj/ecommerce-cli/internal/customer"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
)

type Service interface {
	// ReserveLine validates one order line against live stock and, on
	// success, reserves it by decrementing the product's stock. A line that
	// fails validation reserves nothing.
	ReserveLine(ctx context.Context, productID, quantity int) (OrderItem, error)

	// PlaceOrder records an order for the customer with the already-reserved
	// lines. The order is created and recorded even when items is empty —
	// an all-lines-failed placement is still an order.
	PlaceOrder(ctx context.Context, customerID int, items []OrderItem) (*Order, error)

	GetOrder(ctx context.Context, id int) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
}

type service struct {
	orders    Repository
	products  catalog.Repository
	customers customer.Repository
}

func NewService(orders Repository, products catalog.Repository, customers customer.Repository) Service {
	return &service{orders: orders, products: products, customers: customers}
}

func (s *service) ReserveLine(ctx context.Context, productID, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			log.Warn().Int("product_id", productID).Msg("service: order line for unknown product skipped")
			return OrderItem{}, catalog.ErrProductNotFound
		}

		return OrderItem{}, fmt.Errorf("service: failed to look up product %d: %w", productID, err)
	}

	if product.Stock < quantity {
		log.Warn().
			Int("product_id", productID).
			Int("requested", quantity).
			Int("in_stock", product.Stock).
			Msg("service: order line refused, insufficient stock")
		return OrderItem{}, ErrInsufficientStock
	}

	product.DecreaseStock(quantity)

	return OrderItem{Product: product, Quantity: quantity}, nil
}

func (s *service) PlaceOrder(ctx context.Context, customerID int, items []OrderItem) (*Order, error) {
	cust, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			log.Warn().Int("customer_id", customerID).Msg("service: order placement for unknown customer refused")
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("service: failed to look up customer %d: %w", customerID, err)
	}

	ord := &Order{Customer: cust}
	for _, item := range items {
		ord.AddItem(item)
	}

	if err := s.orders.Create(ctx, ord); err != nil {
		return nil, fmt.Errorf("service: failed to record order: %w", err)
	}

	log.Info().
		Int("order_id", ord.ID).
		Int("customer_id", customerID).
		Int("items", len(ord.Items)).
		Float64("total", ord.Total()).
		Msg("service: order placed")

	return ord, nil
}

func (s *service) GetOrder(ctx context.Context, id int) (*Order, error) {
	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}

		return nil, fmt.Errorf("service: failed to get order by id %d: %w", id, err)
	}

	return ord, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	return orders, nil
}
