package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aswini-raj/ecommerce-cli/internal/order"
)

// Stage is the position of an order in the fulfillment lifecycle, derived
// from its paid/shipped flags.
type Stage string

const (
	StageCreated Stage = "CREATED"
	StagePaid    Stage = "PAID"
	StageShipped Stage = "SHIPPED"
)

var allowedTransitions = map[Stage]map[Stage]bool{
	StageCreated: {StagePaid: true},
	StagePaid:    {StageShipped: true},
	StageShipped: {},
}

var (
	ErrOrderAlreadyPaid     = errors.New("order is already paid")
	ErrOrderNotPaid         = errors.New("order is not paid yet")
	ErrOrderAlreadyShipped  = errors.New("order is already shipped")
	ErrOrderNotShipped      = errors.New("order is not shipped yet")
	ErrItemNotInOrder       = errors.New("order has no line for this product")
	ErrInvalidReturnQty     = errors.New("return quantity exceeds the ordered quantity")
	ErrReturnAlreadyDecided = errors.New("return request has already been reviewed")
)

type Service interface {
	// PayOrder settles an order's current total and marks the order paid.
	PayOrder(ctx context.Context, orderID int) (*Payment, error)

	// ShipOrder dispatches a paid order, stamping the shipment date.
	ShipOrder(ctx context.Context, orderID int) (*Shipment, error)

	// RequestReturn opens a pending return against a line of a shipped order.
	RequestReturn(ctx context.Context, orderID, productID, quantity int, reason string) (*ReturnRequest, error)

	// ReviewReturn approves or rejects a pending return. Approval restores
	// the product's stock; either decision is final.
	ReviewReturn(ctx context.Context, requestID uuid.UUID, approve bool) (*ReturnRequest, error)

	ListReturns(ctx context.Context) ([]*ReturnRequest, error)
}

type service struct {
	repo   Repository
	orders order.Repository
	now    func() time.Time
}

func NewService(repo Repository, orders order.Repository) Service {
	return &service{repo: repo, orders: orders, now: time.Now}
}

func stageOf(o *order.Order) Stage {
	switch {
	case o.Shipped:
		return StageShipped
	case o.Paid:
		return StagePaid
	default:
		return StageCreated
	}
}

func (s *service) PayOrder(ctx context.Context, orderID int) (*Payment, error) {
	ord, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !allowedTransitions[stageOf(ord)][StagePaid] {
		log.Warn().Int("order_id", orderID).Str("stage", string(stageOf(ord))).Msg("service: payment refused")
		return nil, ErrOrderAlreadyPaid
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate payment id: %w", err)
	}

	payment := &Payment{ID: id, OrderID: orderID, Amount: ord.Total(), Status: PaymentPending}
	payment.Process()

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("service: failed to record payment: %w", err)
	}

	ord.Paid = true

	log.Info().
		Int("order_id", orderID).
		Float64("amount", payment.Amount).
		Msg("service: order paid")

	return payment, nil
}

func (s *service) ShipOrder(ctx context.Context, orderID int) (*Shipment, error) {
	ord, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	stage := stageOf(ord)
	if !allowedTransitions[stage][StageShipped] {
		log.Warn().Int("order_id", orderID).Str("stage", string(stage)).Msg("service: shipment refused")
		if stage == StageShipped {
			return nil, ErrOrderAlreadyShipped
		}
		return nil, ErrOrderNotPaid
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate shipment id: %w", err)
	}

	shipment := &Shipment{ID: id, OrderID: orderID, Status: ShipmentPending}
	shipment.Ship(s.now())

	if err := s.repo.CreateShipment(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service: failed to record shipment: %w", err)
	}

	ord.Shipped = true

	log.Info().
		Int("order_id", orderID).
		Time("date", shipment.Date).
		Msg("service: order shipped")

	return shipment, nil
}

func (s *service) RequestReturn(ctx context.Context, orderID, productID, quantity int, reason string) (*ReturnRequest, error) {
	ord, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if stageOf(ord) != StageShipped {
		log.Warn().Int("order_id", orderID).Msg("service: return refused, order not shipped")
		return nil, ErrOrderNotShipped
	}

	var item *order.OrderItem
	for i := range ord.Items {
		if ord.Items[i].Product.ID == productID {
			item = &ord.Items[i]
			break
		}
	}
	if item == nil {
		return nil, ErrItemNotInOrder
	}

	if quantity <= 0 || quantity > item.Quantity {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrInvalidReturnQty, quantity, item.Quantity)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate return id: %w", err)
	}

	request := &ReturnRequest{
		ID:       id,
		OrderID:  orderID,
		Item:     *item,
		Quantity: quantity,
		Reason:   reason,
		Status:   ReturnPending,
	}

	if err := s.repo.CreateReturn(ctx, request); err != nil {
		return nil, fmt.Errorf("service: failed to record return request: %w", err)
	}

	log.Info().
		Int("order_id", orderID).
		Int("product_id", productID).
		Int("quantity", quantity).
		Msg("service: return requested")

	return request, nil
}

func (s *service) ReviewReturn(ctx context.Context, requestID uuid.UUID, approve bool) (*ReturnRequest, error) {
	request, err := s.repo.GetReturnByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrReturnNotFound) {
			return nil, ErrReturnNotFound
		}

		return nil, fmt.Errorf("service: failed to get return request %s: %w", requestID, err)
	}

	if request.Status != ReturnPending {
		log.Warn().Stringer("return_id", requestID).Str("status", string(request.Status)).Msg("service: repeated review refused")
		return nil, ErrReturnAlreadyDecided
	}

	if approve {
		request.Approve()
	} else {
		request.Reject()
	}

	log.Info().
		Stringer("return_id", requestID).
		Str("status", string(request.Status)).
		Msg("service: return reviewed")

	return request, nil
}

func (s *service) ListReturns(ctx context.Context) ([]*ReturnRequest, error) {
	requests, err := s.repo.ListReturns(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list return requests: %w", err)
	}

	return requests, nil
}

func (s *service) getOrder(ctx context.Context, orderID int) (*order.Order, error) {
	ord, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			log.Warn().Int("order_id", orderID).Msg("service: fulfillment operation on unknown order")
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("service: failed to get order %d: %w", orderID, err)
	}

	return ord, nil
}
