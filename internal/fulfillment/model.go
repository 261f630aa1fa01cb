package fulfillment

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/aswini-raj/ecommerce-cli/internal/order"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "Pending"
	PaymentSuccessful PaymentStatus = "Successful"
)

// Payment records the settlement of one order's total.
type Payment struct {
	ID      uuid.UUID
	OrderID int
	Amount  float64
	Status  PaymentStatus
}

// Process flips the payment to Successful. The transition is one-way.
func (p *Payment) Process() {
	p.Status = PaymentSuccessful
}

type ShipmentStatus string

const (
	ShipmentPending ShipmentStatus = "Pending"
	ShipmentShipped ShipmentStatus = "Shipped"
)

// Shipment records the dispatch of one order.
type Shipment struct {
	ID      uuid.UUID
	OrderID int
	Status  ShipmentStatus
	Date    time.Time
}

// Ship flips the shipment to Shipped and stamps the dispatch date. The
// transition is one-way.
func (s *Shipment) Ship(now time.Time) {
	s.Status = ShipmentShipped
	s.Date = now
}

type ReturnStatus string

const (
	ReturnPending  ReturnStatus = "Pending"
	ReturnApproved ReturnStatus = "Approved"
	ReturnRejected ReturnStatus = "Rejected"
)

// ReturnRequest asks to reverse part of an order line. The embedded item
// shares its product reference with the catalog, so approval restores stock
// on the live product.
type ReturnRequest struct {
	ID       uuid.UUID
	OrderID  int
	Item     order.OrderItem
	Quantity int
	Reason   string
	Status   ReturnStatus
}

// Approve marks the request approved and restores the returned quantity to
// the product's stock. This is the only operation that increases stock after
// a product enters the catalog.
func (r *ReturnRequest) Approve() {
	r.Status = ReturnApproved
	r.Item.Product.IncreaseStock(r.Quantity)
}

// Reject marks the request rejected. Stock is untouched.
func (r *ReturnRequest) Reject() {
	r.Status = ReturnRejected
}
