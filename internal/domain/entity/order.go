package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the server-reported fulfillment stage of an order.
// The client projects whatever the server says; it never enforces
// transition legality.
type OrderStatus string

const (
	// StatusPending means the order was received but not yet confirmed.
	StatusPending OrderStatus = "PENDING"
	// StatusConfirmed means the restaurant accepted the order.
	StatusConfirmed OrderStatus = "CONFIRMED"
	// StatusPreparing means the kitchen is working on it.
	StatusPreparing OrderStatus = "PREPARING"
	// StatusReady means the order is packed and waiting for handoff.
	StatusReady OrderStatus = "READY"
	// StatusDelivering means a courier is on the way.
	StatusDelivering OrderStatus = "DELIVERING"
	// StatusCompleted is terminal.
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusCancelled is terminal and server-driven; the client never
	// initiates it.
	StatusCancelled OrderStatus = "CANCELLED"
)

// statusProgression is the canonical lifecycle ordering used to render a
// linear progress indicator. CANCELLED sits outside the progression.
var statusProgression = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivering,
	StatusCompleted,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// ProgressIndex returns the ordinal position of the status within the
// lifecycle ordering. Unknown statuses (including CANCELLED) map to 0,
// never negative or out of bounds.
func (s OrderStatus) ProgressIndex() int {
	if idx := slices.Index(statusProgression, s); idx > 0 {
		return idx
	}

	return 0
}

// IsTerminal reports whether no further status pushes are expected.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OrderItem is a server-priced line of a placed order.
type OrderItem struct {
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// Order is the client-held, read-only projection of a server-side order.
// The tracker keeps Status current from the push stream; everything else
// is fixed at fetch time.
type Order struct {
	ID                    string          `json:"id"`
	OrderNumber           string          `json:"orderNumber"`
	Status                OrderStatus     `json:"status"`
	Items                 []OrderItem     `json:"items"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"totalAmount"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}
