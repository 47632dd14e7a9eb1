package entity

// DeliveryType selects how the order reaches the customer.
type DeliveryType string

const (
	// DeliveryTypeDelivery means a courier brings the order to an address.
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	// DeliveryTypePickup means the customer collects the order.
	DeliveryTypePickup DeliveryType = "PICKUP"
)

// IsValid checks if the DeliveryType is a valid value.
func (t DeliveryType) IsValid() bool {
	return t == DeliveryTypeDelivery || t == DeliveryTypePickup
}

// PaymentMethod selects how the order is paid.
type PaymentMethod string

const (
	// PaymentMethodCard pays through a card provider redirect.
	PaymentMethodCard PaymentMethod = "CARD"
	// PaymentMethodWallet pays through a wallet provider redirect.
	PaymentMethodWallet PaymentMethod = "WALLET"
	// PaymentMethodCash pays the courier on delivery.
	PaymentMethodCash PaymentMethod = "CASH"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodWallet, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// PayOnDelivery reports whether the method settles outside a payment
// provider session. Only these methods confirm an order immediately.
func (m PaymentMethod) PayOnDelivery() bool {
	return m == PaymentMethodCash
}

// DeliveryAddress is the drop-off location for DELIVERY orders.
type DeliveryAddress struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Instructions string `json:"instructions,omitempty"`
}

// DeliveryInfo carries everything the order creation request needs about
// the customer and the handoff. Address is required for DELIVERY and
// ignored for PICKUP.
type DeliveryInfo struct {
	Type         DeliveryType     `json:"deliveryType"`
	Address      *DeliveryAddress `json:"deliveryAddress,omitempty"`
	CustomerName string           `json:"customerName"`
}
