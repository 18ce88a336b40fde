package inventory

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with the authoritative stock count.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Ledger owns the stock counts. It deliberately does not enforce
// non-negativity on adjustment: sufficiency must be proven across an
// order's whole line set before any line is committed, and that check
// belongs to the caller.
type Ledger struct {
	mu    sync.RWMutex
	byID  map[string]*Product
	order []string // catalog listing order
}

// NewLedger seeds the ledger with an arbitrary startup catalog.
func NewLedger(catalog []Product) *Ledger {
	l := &Ledger{byID: make(map[string]*Product, len(catalog))}
	for _, p := range catalog {
		if _, ok := l.byID[p.ID]; ok {
			continue
		}
		cp := p
		l.byID[p.ID] = &cp
		l.order = append(l.order, p.ID)
	}
	return l
}

// GetProduct returns a copy of the product, so callers cannot mutate stock
// behind the ledger's back.
func (l *Ledger) GetProduct(productID string) (Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.byID[productID]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// ListProducts returns a snapshot of the catalog in seeding order.
func (l *Ledger) ListProducts() []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Product, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.byID[id])
	}
	return out
}

// AdjustQuantity applies quantity += delta. A negative delta reserves stock,
// a positive delta returns it. Returns the updated product.
func (l *Ledger) AdjustQuantity(productID string, delta int) (Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.byID[productID]
	if !ok {
		return Product{}, false
	}
	p.Quantity += delta
	return *p, true
}
