package orders

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Line is one order position. Name and price are snapshots taken from the
// catalog at creation time; the order's total stays fixed even if catalog
// prices change later.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is never deleted; cancellation is a status transition.
type Order struct {
	ID           string          `json:"id"`
	CustomerInfo json.RawMessage `json:"customerInfo"`
	Lines        []Line          `json:"products"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

// LineInput is the caller-supplied request line: product reference and
// quantity only, prices are never trusted from the client.
type LineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
