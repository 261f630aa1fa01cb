package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service interface {
	AddCustomer(ctx context.Context, customer *Customer) error
	GetCustomer(ctx context.Context, id int) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddCustomer(ctx context.Context, customer *Customer) error {
	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, ErrCustomerExists) {
			log.Warn().Int("customer_id", customer.ID).Msg("service: duplicate customer id refused")
			return ErrCustomerExists
		}

		return fmt.Errorf("service: failed to add customer: %w", err)
	}

	log.Info().Int("customer_id", customer.ID).Str("name", customer.Name).Msg("service: customer added")

	return nil
}

func (s *service) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}

		return nil, fmt.Errorf("service: failed to get customer by id %d: %w", id, err)
	}

	return customer, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list customers: %w", err)
	}

	return customers, nil
}
