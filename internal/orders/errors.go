package orders

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks; the struct errors below carry the
// diagnostic detail and match their sentinel.
var (
	ErrInvalidOrderData  = errors.New("invalid order data")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool { return target == ErrProductNotFound }

type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient quantity for product %s. Available: %d, Requested: %d",
		e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

type InvalidTransitionError struct {
	OrderID string
	From    Status
	Reason  string
}

func (e *InvalidTransitionError) Error() string { return e.Reason }

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
