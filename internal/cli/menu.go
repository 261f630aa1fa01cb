package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aswini-raj/ecommerce-cli/internal/catalog"
	"github.com/aswini-raj/ecommerce-cli/internal/customer"
	"github.com/aswini-raj/ecommerce-cli/internal/fulfillment"
	"github.com/aswini-raj/ecommerce-cli/internal/order"
)

// Services bundles the domain services the menu dispatches against.
type Services struct {
	Catalog     catalog.Service
	Customers   customer.Service
	Orders      order.Service
	Fulfillment fulfillment.Service
}

// Menu drives the interactive console: print the option list, read one
// choice, perform one operation against the services, repeat until exit.
type Menu struct {
	in       *TokenReader
	out      io.Writer
	currency string
	services Services
}

func NewMenu(in io.Reader, out io.Writer, currency string, services Services) *Menu {
	return &Menu{
		in:       NewTokenReader(in),
		out:      out,
		currency: currency,
		services: services,
	}
}

// Run blocks until the operator chooses to exit or the input stream ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.in.ReadInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out, "Exiting...")
				return nil
			}
			if errors.Is(err, ErrMalformedInput) {
				fmt.Fprintln(m.out, "Invalid choice!")
				continue
			}

			return fmt.Errorf("cli: failed to read menu choice: %w", err)
		}

		var handlerErr error
		switch choice {
		case 1:
			handlerErr = m.addProduct(ctx)
		case 2:
			handlerErr = m.addCustomer(ctx)
		case 3:
			handlerErr = m.placeOrder(ctx)
		case 4:
			handlerErr = m.displayProducts(ctx)
		case 5:
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		case 6:
			handlerErr = m.payOrder(ctx)
		case 7:
			handlerErr = m.shipOrder(ctx)
		case 8:
			handlerErr = m.requestReturn(ctx)
		case 9:
			handlerErr = m.reviewReturn(ctx)
		case 10:
			handlerErr = m.displayOrders(ctx)
		default:
			fmt.Fprintln(m.out, "Invalid choice!")
		}

		if handlerErr != nil {
			if errors.Is(handlerErr, io.EOF) {
				fmt.Fprintln(m.out, "Exiting...")
				return nil
			}

			return handlerErr
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n=== E-Commerce System ===")
	fmt.Fprintln(m.out, "1. Add Product\n2. Add Customer\n3. Place Order\n4. Display Products\n5. Exit")
	fmt.Fprintln(m.out, "6. Pay Order\n7. Ship Order\n8. Request Return\n9. Review Return\n10. Display Orders")
	fmt.Fprint(m.out, "Enter choice: ")
}

// argError translates a failed argument read into operator feedback. The
// returned error is non-nil only when the loop itself must stop.
func (m *Menu) argError(err error) error {
	if errors.Is(err, ErrMalformedInput) {
		fmt.Fprintln(m.out, "Invalid input! Operation cancelled.")
		return nil
	}

	return err
}

func (m *Menu) addProduct(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter Product ID, Name, Price, Stock: ")

	id, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}
	name, err := m.in.ReadWord()
	if err != nil {
		return m.argError(err)
	}
	price, err := m.in.ReadFloat()
	if err != nil {
		return m.argError(err)
	}
	stock, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}

	err = m.services.Catalog.AddProduct(ctx, &catalog.Product{ID: id, Name: name, Price: price, Stock: stock})
	switch {
	case errors.Is(err, catalog.ErrProductExists):
		fmt.Fprintln(m.out, "Product ID already exists!")
	case errors.Is(err, catalog.ErrInvalidProduct):
		fmt.Fprintln(m.out, "Price and stock must be non-negative!")
	case err != nil:
		return fmt.Errorf("cli: failed to add product: %w", err)
	default:
		fmt.Fprintln(m.out, "Product added!")
	}

	return nil
}

func (m *Menu) addCustomer(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter Customer ID, Name, Email: ")

	id, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}
	name, err := m.in.ReadWord()
	if err != nil {
		return m.argError(err)
	}
	email, err := m.in.ReadWord()
	if err != nil {
		return m.argError(err)
	}

	err = m.services.Customers.AddCustomer(ctx, &customer.Customer{ID: id, Name: name, Email: email})
	switch {
	case errors.Is(err, customer.ErrCustomerExists):
		fmt.Fprintln(m.out, "Customer ID already exists!")
	case err != nil:
		return fmt.Errorf("cli: failed to add customer: %w", err)
	default:
		fmt.Fprintln(m.out, "Customer added!")
	}

	return nil
}

func (m *Menu) placeOrder(ctx context.Context) error {
	products, err := m.services.Catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("cli: failed to place order: %w", err)
	}
	customers, err := m.services.Customers.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("cli: failed to place order: %w", err)
	}
	if len(products) == 0 || len(customers) == 0 {
		fmt.Fprintln(m.out, "Add products and customers first!")
		return nil
	}

	fmt.Fprint(m.out, "Enter Customer ID: ")
	customerID, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}

	if _, err := m.services.Customers.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			fmt.Fprintln(m.out, "Customer not found!")
			return nil
		}

		return fmt.Errorf("cli: failed to place order: %w", err)
	}

	fmt.Fprint(m.out, "How many items? ")
	count, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}

	// Reserved lines must end up on an order even if reading later lines
	// fails, so a read error breaks out and the order is placed first.
	var items []order.OrderItem
	var readErr error

	for i := 0; i < count; i++ {
		fmt.Fprint(m.out, "Enter Product ID and Quantity: ")

		productID, err := m.in.ReadInt()
		if errors.Is(err, ErrMalformedInput) {
			fmt.Fprintln(m.out, "Invalid input! Line skipped.")
			continue
		}
		if err != nil {
			readErr = err
			break
		}

		qty, err := m.in.ReadInt()
		if errors.Is(err, ErrMalformedInput) {
			fmt.Fprintln(m.out, "Invalid input! Line skipped.")
			continue
		}
		if err != nil {
			readErr = err
			break
		}

		item, err := m.services.Orders.ReserveLine(ctx, productID, qty)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) ||
				errors.Is(err, order.ErrInsufficientStock) ||
				errors.Is(err, order.ErrInvalidQuantity) {
				fmt.Fprintln(m.out, "Invalid product or insufficient stock!")
				continue
			}

			return fmt.Errorf("cli: failed to place order: %w", err)
		}

		items = append(items, item)
	}

	ord, err := m.services.Orders.PlaceOrder(ctx, customerID, items)
	if err != nil {
		return fmt.Errorf("cli: failed to place order: %w", err)
	}

	fmt.Fprintf(m.out, "Order placed: %s\n", m.formatOrder(ord))

	return readErr
}

func (m *Menu) displayProducts(ctx context.Context) error {
	products, err := m.services.Catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("cli: failed to display products: %w", err)
	}

	for _, p := range products {
		fmt.Fprintln(m.out, m.formatProduct(p))
	}

	return nil
}

func (m *Menu) payOrder(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter Order ID: ")
	orderID, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}

	payment, err := m.services.Fulfillment.PayOrder(ctx, orderID)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		fmt.Fprintln(m.out, "Order not found!")
	case errors.Is(err, fulfillment.ErrOrderAlreadyPaid):
		fmt.Fprintln(m.out, "Order is already paid!")
	case err != nil:
		return fmt.Errorf("cli: failed to pay order: %w", err)
	default:
		fmt.Fprintf(m.out, "Payment ID: %s | Amount: %s%.2f | Status: %s\n",
			payment.ID, m.currency, payment.Amount, payment.Status)
	}

	return nil
}

func (m *Menu) shipOrder(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter Order ID: ")
	orderID, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}

	shipment, err := m.services.Fulfillment.ShipOrder(ctx, orderID)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		fmt.Fprintln(m.out, "Order not found!")
	case errors.Is(err, fulfillment.ErrOrderNotPaid):
		fmt.Fprintln(m.out, "Order is not paid yet!")
	case errors.Is(err, fulfillment.ErrOrderAlreadyShipped):
		fmt.Fprintln(m.out, "Order is already shipped!")
	case err != nil:
		return fmt.Errorf("cli: failed to ship order: %w", err)
	default:
		fmt.Fprintf(m.out, "Shipment ID: %s | Status: %s | Date: %s\n",
			shipment.ID, shipment.Status, shipment.Date.Format("2006-01-02"))
	}

	return nil
}

func (m *Menu) requestReturn(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter Order ID, Product ID, Quantity, Reason: ")

	orderID, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}
	productID, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}
	qty, err := m.in.ReadInt()
	if err != nil {
		return m.argError(err)
	}
	reason, err := m.in.ReadWord()
	if err != nil {
		return m.argError(err)
	}

	request, err := m.services.Fulfillment.RequestReturn(ctx, orderID, productID, qty, reason)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		fmt.Fprintln(m.out, "Order not found!")
	case errors.Is(err, fulfillment.ErrOrderNotShipped):
		fmt.Fprintln(m.out, "Order is not shipped yet!")
	case errors.Is(err, fulfillment.ErrItemNotInOrder):
		fmt.Fprintln(m.out, "Order has no such product!")
	case errors.Is(err, fulfillment.ErrInvalidReturnQty):
		fmt.Fprintln(m.out, "Invalid return quantity!")
	case err != nil:
		return fmt.Errorf("cli: failed to request return: %w", err)
	default:
		fmt.Fprintf(m.out, "Return requested: %s\n", m.formatReturn(request))
	}

	return nil
}

func (m *Menu) reviewReturn(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter Return ID and decision (approve/reject): ")

	id, err := m.in.ReadUUID()
	if err != nil {
		return m.argError(err)
	}
	decision, err := m.in.ReadWord()
	if err != nil {
		return m.argError(err)
	}

	var approve bool
	switch strings.ToLower(decision) {
	case "approve":
		approve = true
	case "reject":
		approve = false
	default:
		fmt.Fprintln(m.out, "Invalid input! Operation cancelled.")
		return nil
	}

	request, err := m.services.Fulfillment.ReviewReturn(ctx, id, approve)
	switch {
	case errors.Is(err, fulfillment.ErrReturnNotFound):
		fmt.Fprintln(m.out, "Return request not found!")
	case errors.Is(err, fulfillment.ErrReturnAlreadyDecided):
		fmt.Fprintln(m.out, "Return request already reviewed!")
	case err != nil:
		return fmt.Errorf("cli: failed to review return: %w", err)
	default:
		fmt.Fprintf(m.out, "Return reviewed: %s\n", m.formatReturn(request))
	}

	return nil
}

func (m *Menu) displayOrders(ctx context.Context) error {
	orders, err := m.services.Orders.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("cli: failed to display orders: %w", err)
	}

	for _, o := range orders {
		fmt.Fprintln(m.out, m.formatOrder(o))
		for _, item := range o.Items {
			fmt.Fprintf(m.out, "  %s\n", m.formatItem(item))
		}
	}

	return nil
}

func (m *Menu) formatProduct(p *catalog.Product) string {
	return fmt.Sprintf("Product ID: %d | %s | Price: %s%.2f | Stock: %d", p.ID, p.Name, m.currency, p.Price, p.Stock)
}

func (m *Menu) formatOrder(o *order.Order) string {
	return fmt.Sprintf("Order ID: %d | Customer: %s | Total: %s%.2f | Paid: %t | Shipped: %t",
		o.ID, o.Customer.Name, m.currency, o.Total(), o.Paid, o.Shipped)
}

func (m *Menu) formatItem(item order.OrderItem) string {
	return fmt.Sprintf("%s x %d = %s%.2f", item.Product.Name, item.Quantity, m.currency, item.ItemTotal())
}

func (m *Menu) formatReturn(r *fulfillment.ReturnRequest) string {
	return fmt.Sprintf("Return ID: %s | Product: %s | Qty: %d | Status: %s",
		r.ID, r.Item.Product.Name, r.Quantity, r.Status)
}
