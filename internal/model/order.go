package model

import "time"

// Payment method labels exposed alongside an order result.
const (
	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
)

// OrderResult is the read model of a placed order as shown to the buyer.
type OrderResult struct {
	ID              int64     `json:"id"`
	BuyerEmail      string    `json:"buyerEmail"`
	OrderDate       time.Time `json:"orderDate"`
	Subtotal        float64   `json:"subtotal"`
	DeliveryFee     float64   `json:"deliveryFee"`
	Total           float64   `json:"total"`
	Status          string    `json:"status"`
	PaymentIntentID string    `json:"paymentIntentId,omitempty"`
}

// IsCashPayment reports whether the order was placed without a card payment intent.
func IsCashPayment(o OrderResult) bool {
	return o.PaymentIntentID == ""
}

// PaymentMethod derives the payment label from the payment intent.
func PaymentMethod(o OrderResult) string {
	if IsCashPayment(o) {
		return PaymentMethodCash
	}
	return PaymentMethodCard
}

// PaymentRequest is the client payload asking to prepare a payment for a basket.
type PaymentRequest struct {
	BasketID         string `json:"basketId" validate:"required"`
	ShippingMethodID int64  `json:"shippingMethodId" validate:"required,min=1"`
}
