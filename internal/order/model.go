package order

import (
	"github.com/aswini-raj/ecommerce-cli/internal/catalog"
	"github.com/aswini-raj/ecommerce-cli/internal/customer"
)

// OrderItem is one (product, quantity) line within an order. The product
// reference is shared with the catalog, so the line total always reflects
// the product's current price.
type OrderItem struct {
	Product  *catalog.Product
	Quantity int
}

// ItemTotal computes price × quantity freshly on every call; nothing is
// cached.
func (i OrderItem) ItemTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Order is a customer's collection of order lines. The order owns its items;
// the customer reference is shared with the customer store. Paid and Shipped
// flip one-way through the fulfillment lifecycle.
type Order struct {
	ID       int
	Customer *customer.Customer
	Items    []OrderItem
	Paid     bool
	Shipped  bool
}

func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
}

// Total folds the item totals over the current items, recomputed on demand.
func (o *Order) Total() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.ItemTotal()
	}

	return total
}
