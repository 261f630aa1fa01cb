package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrInvalidProduct = errors.New("invalid product")

type Service interface {
	AddProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddProduct(ctx context.Context, product *Product) error {
	if product.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative, got %f", ErrInvalidProduct, product.Price)
	}

	if product.Stock < 0 {
		return fmt.Errorf("%w: stock must be non-negative, got %d", ErrInvalidProduct, product.Stock)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, ErrProductExists) {
			log.Warn().Int("product_id", product.ID).Msg("service: duplicate product id refused")
			return ErrProductExists
		}

		return fmt.Errorf("service: failed to add product: %w", err)
	}

	log.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("service: product added")

	return nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, fmt.Errorf("service: failed to get product by id %d: %w", id, err)
	}

	return product, nil
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	return products, nil
}
