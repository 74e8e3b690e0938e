package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment records money received for an order. Payments are created when an
// order is marked PAID and live in memory only; the codec does not persist
// them.
type Payment struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"orderId"`
	Amount   float64   `json:"amount"`
	PaidAt   time.Time `json:"paidAt"`
}

func NewPayment(orderID string, amount float64) *Payment {
	return &Payment{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Amount:  amount,
		PaidAt:  time.Now(),
	}
}
