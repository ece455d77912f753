package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	// OrderStatusPending means the order was created but not paid
	OrderStatusPending OrderStatus = "PENDING"

	// OrderStatusPaid means payment completed
	OrderStatusPaid OrderStatus = "PAID"

	// OrderStatusShipped means the order left the warehouse
	OrderStatusShipped OrderStatus = "SHIPPED"

	// OrderStatusCompleted means the order was delivered and closed
	OrderStatusCompleted OrderStatus = "COMPLETED"

	// OrderStatusCancelled means the order was cancelled
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of OrderStatus
func (os OrderStatus) String() string {
	return string(os)
}

// IsCancellable reports whether a cancel request makes sense client-side.
// The backend remains the authority; this only gates the UI action.
func (os OrderStatus) IsCancellable() bool {
	return os == OrderStatusPending || os == OrderStatusPaid
}

// IsFinished returns true for terminal statuses
func (os OrderStatus) IsFinished() bool {
	return os == OrderStatusCompleted || os == OrderStatusCancelled
}

// OrderItem is a single line within an order
type OrderItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order mirrors a backend order record. Orders are never created
// client-side; they come back from the checkout call or a fetch.
type Order struct {
	ID              int64           `json:"id"`
	Items           []OrderItem     `json:"items"`
	Amount          decimal.Decimal `json:"amount"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CheckoutRequest is the payload sent to create an order
type CheckoutRequest struct {
	CartItems       []CartItem `json:"cartItems"`
	ShippingAddress string     `json:"shippingAddress"`
	PaymentMethod   string     `json:"paymentMethod"`
}
