package models

// InventoryUnit is the unit label shared by all inventory items.
const InventoryUnit = "pcs"

// InventoryItem tracks consumables (paper, frames, albums).
type InventoryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AddQuantity restocks the item. Non-positive amounts are ignored.
func (i *InventoryItem) AddQuantity(amount int) {
	if amount > 0 {
		i.Quantity += amount
	}
}
