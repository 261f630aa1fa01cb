package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aswini-raj/ecommerce-cli/internal/catalog"
	"github.com/aswini-raj/ecommerce-cli/internal/cli"
	"github.com/aswini-raj/ecommerce-cli/internal/config"
	"github.com/aswini-raj/ecommerce-cli/internal/customer"
	"github.com/aswini-raj/ecommerce-cli/internal/fulfillment"
	"github.com/aswini-raj/ecommerce-cli/internal/order"
)

func main() {
	// Logs go to stderr so they never interleave with the menu on stdout.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "ecommerce-cli").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	productRepo := catalog.NewRepository()
	customerRepo := customer.NewRepository()
	orderRepo := order.NewRepository()
	fulfillmentRepo := fulfillment.NewRepository()

	services := cli.Services{
		Catalog:     catalog.NewService(productRepo),
		Customers:   customer.NewService(customerRepo),
		Orders:      order.NewService(orderRepo, productRepo, customerRepo),
		Fulfillment: fulfillment.NewService(fulfillmentRepo, orderRepo),
	}

	ctx := context.Background()

	if cfg.SeedSampleData {
		if err := seed(ctx, services); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed sample data")
		}
		log.Info().Msg("Sample data seeded")
	}

	menu := cli.NewMenu(os.Stdin, os.Stdout, cfg.CurrencySymbol, services)
	if err := menu.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Console loop failed")
	}
}

func seed(ctx context.Context, services cli.Services) error {
	products := []*catalog.Product{
		{ID: 1, Name: "Pen", Price: 10, Stock: 50},
		{ID: 2, Name: "Notebook", Price: 50, Stock: 20},
		{ID: 3, Name: "Backpack", Price: 799, Stock: 5},
	}
	for _, p := range products {
		if err := services.Catalog.AddProduct(ctx, p); err != nil {
			return err
		}
	}

	customers := []*customer.Customer{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}
	for _, c := range customers {
		if err := services.Customers.AddCustomer(ctx, c); err != nil {
			return err
		}
	}

	return nil
}
