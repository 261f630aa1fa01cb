package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aswini-raj/ecommerce-cli/internal/catalog"
	"github.com/aswini-raj/ecommerce-cli/internal/cli"
	"github.com/aswini-raj/ecommerce-cli/internal/customer"
	"github.com/aswini-raj/ecommerce-cli/internal/fulfillment"
	"github.com/aswini-raj/ecommerce-cli/internal/order"
)

type harness struct {
	products catalog.Repository
	orders   order.Repository
	services cli.Services
	out      bytes.Buffer
}

func newHarness() *harness {
	h := &harness{
		products: catalog.NewRepository(),
		orders:   order.NewRepository(),
	}

	customers := customer.NewRepository()
	fulfillments := fulfillment.NewRepository()

	h.services = cli.Services{
		Catalog:     catalog.NewService(h.products),
		Customers:   customer.NewService(customers),
		Orders:      order.NewService(h.orders, h.products, customers),
		Fulfillment: fulfillment.NewService(fulfillments, h.orders),
	}

	return h
}

// run feeds a script of whitespace-delimited tokens through the menu loop
// against the harness state and returns the printed output.
func (h *harness) run(t *testing.T, script string) string {
	t.Helper()

	menu := cli.NewMenu(strings.NewReader(script), &h.out, "₹", h.services)
	require.NoError(t, menu.Run(context.Background()))

	return h.out.String()
}

func TestMenu_AddProductThenDisplay(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 4 5")

	assert.Contains(t, out, "Product added!")
	assert.Contains(t, out, "Product ID: 1 | Pen | Price: ₹10.00 | Stock: 5")
	assert.Contains(t, out, "Exiting...")
}

func TestMenu_DuplicateProductID(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 1 1 Pencil 5.0 3 5")

	assert.Contains(t, out, "Product ID already exists!")

	products, err := h.products.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Name)
}

func TestMenu_DuplicateCustomerID(t *testing.T) {
	h := newHarness()

	out := h.run(t, "2 1 Alice a@x.com 2 1 Bob b@x.com 5")

	assert.Contains(t, out, "Customer added!")
	assert.Contains(t, out, "Customer ID already exists!")
}

func TestMenu_PlaceOrderScenario(t *testing.T) {
	// Pen(10.0, stock 5), Alice, one line of qty 3.
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 2 1 Alice a@x.com 3 1 1 1 3 5")

	assert.Contains(t, out, "Order placed: Order ID: 1 | Customer: Alice | Total: ₹30.00 | Paid: false | Shipped: false")

	pen, err := h.products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, pen.Stock)
}

func TestMenu_PlaceOrderInsufficientStock(t *testing.T) {
	// Requesting qty 10 of stock 5 still records an order, with zero items
	// and untouched stock.
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 2 1 Alice a@x.com 3 1 1 1 10 5")

	assert.Contains(t, out, "Invalid product or insufficient stock!")
	assert.Contains(t, out, "Order placed: Order ID: 1 | Customer: Alice | Total: ₹0.00 | Paid: false | Shipped: false")

	pen, err := h.products.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, pen.Stock)

	orders, err := h.orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Empty(t, orders[0].Items)
}

func TestMenu_PlaceOrderMixedLines(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 1 2 Notebook 50.0 1 2 1 Alice a@x.com 3 1 3 1 3 2 9 42 1 5")

	// Line one (3 pens) passes, line two (9 notebooks) and line three
	// (unknown product) are skipped; the order keeps the one good line.
	assert.Contains(t, out, "Invalid product or insufficient stock!")
	assert.Contains(t, out, "Order placed: Order ID: 1 | Customer: Alice | Total: ₹30.00 | Paid: false | Shipped: false")

	orders, err := h.orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 1, orders[0].Items[0].Product.ID)
}

func TestMenu_PlaceOrderPreconditions(t *testing.T) {
	h := newHarness()

	out := h.run(t, "3 5")
	assert.Contains(t, out, "Add products and customers first!")

	orders, err := h.orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMenu_PlaceOrderUnknownCustomer(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 2 1 Alice a@x.com 3 7 5")

	assert.Contains(t, out, "Customer not found!")

	orders, err := h.orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMenu_InvalidChoice(t *testing.T) {
	h := newHarness()

	out := h.run(t, "42 5")

	assert.Contains(t, out, "Invalid choice!")
	assert.Contains(t, out, "Exiting...")
}

func TestMenu_MalformedChoiceRecovers(t *testing.T) {
	h := newHarness()

	out := h.run(t, "banana 1 1 Pen 10.0 5 5")

	assert.Contains(t, out, "Invalid choice!")
	assert.Contains(t, out, "Product added!", "loop must keep running after a malformed choice")
}

func TestMenu_MalformedArgumentCancelsOperation(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1 oops Pen 10.0 5 5")

	assert.Contains(t, out, "Invalid input! Operation cancelled.")

	products, err := h.products.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products, "a cancelled add must not touch the catalog")
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	h := newHarness()

	out := h.run(t, "")

	assert.Contains(t, out, "Exiting...")
}

func TestMenu_FulfillmentLifecycle(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	out := h.run(t, "1 1 Pen 10.0 5 2 1 Alice a@x.com 3 1 1 1 3 7 1 6 1 6 1 7 1 7 1 8 1 1 2 damaged 5")

	// Ship before pay is refused, pay twice is refused, ship twice is
	// refused, then the return is opened against the shipped order.
	assert.Contains(t, out, "Order is not paid yet!")
	assert.Contains(t, out, "Payment ID:")
	assert.Contains(t, out, "Amount: ₹30.00 | Status: Successful")
	assert.Contains(t, out, "Order is already paid!")
	assert.Contains(t, out, "Shipment ID:")
	assert.Contains(t, out, "Order is already shipped!")
	assert.Contains(t, out, "Return requested: Return ID:")

	returns, err := h.services.Fulfillment.ListReturns(ctx)
	require.NoError(t, err)
	require.Len(t, returns, 1)
	assert.Equal(t, fulfillment.ReturnPending, returns[0].Status)

	// Approve through a fresh menu on the same state, now that the id is
	// known.
	script := "9 " + returns[0].ID.String() + " approve 5"
	out = h.run(t, script)
	assert.Contains(t, out, "Return reviewed: Return ID:")
	assert.Contains(t, out, "Status: Approved")

	pen, err := h.products.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, pen.Stock, "stock 5 - 3 ordered + 2 returned")
}

func TestMenu_DisplayOrders(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1 1 Pen 10.0 5 2 1 Alice a@x.com 3 1 1 1 2 10 5")

	assert.Contains(t, out, "Order ID: 1 | Customer: Alice | Total: ₹20.00 | Paid: false | Shipped: false")
	assert.Contains(t, out, "  Pen x 2 = ₹20.00")
}
