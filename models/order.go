package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusPaid       OrderStatus = "PAID"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNew, StatusInProgress, StatusCompleted, StatusPaid:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Order is a booked photo session. It references its client and photographer
// by id, embeds the session type by value, and owns its photos.
// OrderDate is both the creation timestamp and the slot the availability
// check compares against.
type Order struct {
	ID        string      `json:"id"`
	OrderDate time.Time   `json:"orderDate"`
	Status    OrderStatus `json:"status"`
	TotalCost float64     `json:"totalCost"`

	ClientID       string `json:"clientId"`
	PhotographerID string `json:"photographerId"`

	Client       *Client       `json:"client,omitempty"`
	Photographer *Photographer `json:"photographer,omitempty"`

	SessionType SessionType `json:"sessionType"`
	Photos      []Photo     `json:"photos"`
}

// NewOrder books a session and prices it once. Regular clients get 10% off;
// a loyalty upgrade after this point does not reprice the order.
func NewOrder(client *Client, photographer *Photographer, sessionType SessionType) *Order {
	o := &Order{
		ID:             uuid.NewString(),
		OrderDate:      time.Now(),
		Status:         StatusNew,
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Client:         client,
		Photographer:   photographer,
		SessionType:    sessionType,
		Photos:         []Photo{},
	}
	o.TotalCost = o.calculateTotalCost()
	return o
}

func (o *Order) calculateTotalCost() float64 {
	cost := o.SessionType.BasePrice
	if o.Client != nil && o.Client.IsRegular {
		cost *= 0.90
	}
	return cost
}

// SetTotalCost overrides the cached price, e.g. when rehydrating from disk.
func (o *Order) SetTotalCost(cost float64) {
	o.TotalCost = cost
}

// AddPhoto attaches a new photo to the order and returns it.
func (o *Order) AddPhoto(filePath string) Photo {
	photo := NewPhoto(filePath)
	o.Photos = append(o.Photos, photo)
	return photo
}

// IsActive reports whether the order still needs work.
func (o *Order) IsActive() bool {
	return o.Status == StatusNew || o.Status == StatusInProgress
}
