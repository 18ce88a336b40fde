package service

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-order-desk.git/internal/inventory"
	"github.com/ariefcatur/go-order-desk.git/internal/orders"
	"github.com/ariefcatur/go-order-desk.git/internal/queue"
)

// OrderService composes the ledger, the order store and the processing queue
// into the user-visible operations. All cross-component invariants live here:
// stock never goes negative, a reservation matches its order's lines exactly,
// and an order sits in the queue iff it is pending.
//
// A single mutex serializes the mutating protocols (validate+reserve in
// Create, restitute in Cancel, peek/mark/remove in ProcessNext). Without it
// two concurrent Creates could both pass validation against a stale stock
// snapshot and jointly over-reserve.
type OrderService struct {
	mu     sync.Mutex
	ledger *inventory.Ledger
	store  *orders.Store
	queue  *queue.Queue
	log    *zap.Logger
}

func NewOrderService(ledger *inventory.Ledger, store *orders.Store, q *queue.Queue, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		ledger: ledger,
		store:  store,
		queue:  q,
		log:    log,
	}
}

// Create validates every line against current stock, creates the order,
// reserves stock for all lines and enqueues the order id — atomically from
// the caller's perspective: it either fully succeeds or fails with no side
// effects.
func (s *OrderService) Create(customerInfo json.RawMessage, lines []orders.LineInput) (orders.Order, error) {
	if isAbsent(customerInfo) || len(lines) == 0 {
		return orders.Order{}, orders.ErrInvalidOrderData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Read-only pass over the whole line set first, so a failure on any line
	// leaves nothing partially reserved. Quantities are summed per product:
	// several lines for the same product must fit the stock together.
	requested := make(map[string]int, len(lines))
	for _, in := range lines {
		if in.Quantity <= 0 {
			return orders.Order{}, orders.ErrInvalidOrderData
		}
		p, ok := s.ledger.GetProduct(in.ProductID)
		if !ok {
			return orders.Order{}, &orders.ProductNotFoundError{ProductID: in.ProductID}
		}
		requested[in.ProductID] += in.Quantity
		if p.Quantity < requested[in.ProductID] {
			return orders.Order{}, &orders.InsufficientStockError{
				ProductID: in.ProductID,
				Name:      p.Name,
				Available: p.Quantity,
				Requested: requested[in.ProductID],
			}
		}
	}

	ord, err := s.store.Create(customerInfo, lines)
	if err != nil {
		return orders.Order{}, err
	}

	// The pass above proved sufficiency for the per-product totals and the
	// service mutex shuts out competing reservations, so none of these can go
	// negative.
	for _, ln := range ord.Lines {
		s.ledger.AdjustQuantity(ln.ProductID, -ln.Quantity)
	}
	s.queue.Enqueue(ord.ID)

	s.log.Info("order created",
		zap.String("order_id", ord.ID),
		zap.Int("lines", len(ord.Lines)),
		zap.String("total", ord.TotalAmount.String()),
	)
	return ord, nil
}

// Cancel returns the order's snapshotted quantities to the ledger, removes it
// from the queue and marks it canceled. Terminal orders are rejected without
// touching inventory or the queue.
func (s *OrderService) Cancel(orderID string) (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ord, err := s.store.Get(orderID)
	if err != nil {
		return orders.Order{}, err
	}
	if !orders.CanTransition(ord.Status, orders.StatusCanceled) {
		reason := "order is already canceled"
		if ord.Status == orders.StatusProcessed {
			reason = "cannot cancel a processed order"
		}
		return orders.Order{}, &orders.InvalidTransitionError{
			OrderID: orderID,
			From:    ord.Status,
			Reason:  reason,
		}
	}

	// Restitution mirrors the reservation exactly: the snapshotted line
	// quantities, not the live catalog.
	for _, ln := range ord.Lines {
		s.ledger.AdjustQuantity(ln.ProductID, ln.Quantity)
	}
	s.queue.Remove(orderID)

	updated, err := s.store.SetStatus(orderID, orders.StatusCanceled)
	if err != nil {
		return orders.Order{}, err
	}
	s.log.Info("order canceled", zap.String("order_id", orderID))
	return updated, nil
}

// ProcessNext marks the queue head processed and dequeues it. An empty queue
// is a valid outcome, reported via ok=false, not an error. No inventory
// change happens here; stock was committed at creation time.
func (s *OrderService) ProcessNext() (orders.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id, ok := s.queue.PeekNext()
		if !ok {
			return orders.Order{}, false, nil
		}
		ord, err := s.store.Get(id)
		if err != nil || ord.Status != orders.StatusPending {
			// An entry no longer backed by a pending order is dropped, not
			// processed.
			s.queue.Remove(id)
			continue
		}

		updated, err := s.store.SetStatus(id, orders.StatusProcessed)
		if err != nil {
			return orders.Order{}, false, err
		}
		s.queue.Remove(id)
		s.log.Info("order processed", zap.String("order_id", id))
		return updated, true, nil
	}
}

func (s *OrderService) Get(orderID string) (orders.Order, error) {
	return s.store.Get(orderID)
}

func (s *OrderService) List() []orders.Order {
	return s.store.List()
}

// ListProducts exposes the ledger snapshot for inspection.
func (s *OrderService) ListProducts() []inventory.Product {
	return s.ledger.ListProducts()
}

// QueueEntries exposes the pending worklist for diagnostics.
func (s *OrderService) QueueEntries() []queue.Entry {
	return s.queue.Snapshot()
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
