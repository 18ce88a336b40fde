package orders

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-order-desk.git/internal/clock"
	"github.com/ariefcatur/go-order-desk.git/internal/inventory"
)

// Store holds order records in memory, in insertion order. It resolves and
// prices line items through the inventory ledger at creation time but never
// adjusts stock itself; reservation belongs to the orchestrator.
type Store struct {
	mu     sync.RWMutex
	ledger *inventory.Ledger
	clock  clock.Clock
	byID   map[string]*Order
	order  []string
}

func NewStore(ledger *inventory.Ledger, clk clock.Clock) *Store {
	return &Store{
		ledger: ledger,
		clock:  clk,
		byID:   make(map[string]*Order),
	}
}

// Create validates every line before any side effect: on the first missing
// product or stock shortfall nothing is created. On success it snapshots
// name and price into each line, sums the total, and records the order as
// pending.
func (s *Store) Create(customerInfo json.RawMessage, lines []LineInput) (Order, error) {
	if len(customerInfo) == 0 || len(lines) == 0 {
		return Order{}, ErrInvalidOrderData
	}

	// Requested quantities are summed per product so that several lines for
	// the same product are validated against the stock together.
	products := make(map[string]inventory.Product, len(lines))
	requested := make(map[string]int, len(lines))
	for _, in := range lines {
		if in.Quantity <= 0 {
			return Order{}, ErrInvalidOrderData
		}
		p, ok := products[in.ProductID]
		if !ok {
			p, ok = s.ledger.GetProduct(in.ProductID)
			if !ok {
				return Order{}, &ProductNotFoundError{ProductID: in.ProductID}
			}
			products[in.ProductID] = p
		}
		requested[in.ProductID] += in.Quantity
		if p.Quantity < requested[in.ProductID] {
			return Order{}, &InsufficientStockError{
				ProductID: in.ProductID,
				Name:      p.Name,
				Available: p.Quantity,
				Requested: requested[in.ProductID],
			}
		}
	}

	total := decimal.Zero
	snapshot := make([]Line, 0, len(lines))
	for _, in := range lines {
		p := products[in.ProductID]
		snapshot = append(snapshot, Line{
			ProductID: in.ProductID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  in.Quantity,
		})
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	ord := &Order{
		ID:           uuid.NewString(),
		CustomerInfo: append(json.RawMessage(nil), customerInfo...),
		Lines:        snapshot,
		TotalAmount:  total,
		Status:       StatusPending,
		CreatedAt:    s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[ord.ID] = ord
	s.order = append(s.order, ord.ID)
	return copyOrder(ord), nil
}

func (s *Store) Get(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ord, ok := s.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return copyOrder(ord), nil
}

// List returns a snapshot of all orders in insertion order.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyOrder(s.byID[id]))
	}
	return out
}

// SetStatus sets the status and stamps updatedAt. It does not judge the
// transition's legality; that is enforced by the order service before the
// call.
func (s *Store) SetStatus(id string, status Status) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ord, ok := s.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	now := s.clock.Now()
	ord.Status = status
	ord.UpdatedAt = &now
	return copyOrder(ord), nil
}

func copyOrder(ord *Order) Order {
	cp := *ord
	cp.Lines = append([]Line(nil), ord.Lines...)
	cp.CustomerInfo = append(json.RawMessage(nil), ord.CustomerInfo...)
	if ord.UpdatedAt != nil {
		t := *ord.UpdatedAt
		cp.UpdatedAt = &t
	}
	return cp
}
