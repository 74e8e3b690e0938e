package models

// SessionType is a named photography service with a base price. It is a
// value object: orders embed a copy, so a later change to the catalog price
// never touches existing orders.
type SessionType struct {
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}
